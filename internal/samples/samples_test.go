package samples

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAllReturnsCopy(t *testing.T) {
	a := All()
	assert.Len(t, a, 3)
	a[0].Title = "changed"
	assert.Equal(t, "Artificial Intelligence Revolution", All()[0].Title)
}

func TestPickRotates(t *testing.T) {
	base := time.Unix(300, 0)
	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		seen[Pick(base.Add(time.Duration(i)*time.Second)).Title] = true
	}
	assert.Len(t, seen, 3)
	assert.Equal(t, Pick(base), Pick(base.Add(3*time.Second)))
	assert.Equal(t, "Artificial Intelligence Revolution", Pick(base).Title)
}

func TestPickBeforeEpoch(t *testing.T) {
	assert.NotEmpty(t, Pick(time.Unix(-7, 0)).Text)
}
