// Package samples holds the demonstration texts offered by the API and TUI.
package samples

import "time"

type Sample struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

var builtin = []Sample{
	{
		Title: "Artificial Intelligence Revolution",
		Text: "Artificial intelligence (AI) is revolutionizing the way we work, live, and interact with technology. " +
			"From machine learning algorithms that can predict consumer behavior to natural language processing systems that can understand and respond to human speech, AI is transforming industries across the globe. " +
			"In healthcare, AI is being used to diagnose diseases more accurately and develop personalized treatment plans. " +
			"In finance, AI algorithms are detecting fraud and making investment decisions. " +
			"In transportation, autonomous vehicles powered by AI are becoming a reality. " +
			"As AI continues to evolve, it promises to bring even more innovative solutions to complex problems, making our lives more efficient and productive.",
	},
	{
		Title: "Climate Change Challenge",
		Text: "Climate change represents one of the most pressing challenges of our time, with far-reaching implications for ecosystems, human societies, and the global economy. " +
			"Rising global temperatures, caused primarily by greenhouse gas emissions from human activities, are leading to more frequent and severe weather events, including hurricanes, droughts, and floods. " +
			"The melting of polar ice caps and glaciers is contributing to rising sea levels, threatening coastal communities worldwide. " +
			"To address this crisis, governments, businesses, and individuals must work together to reduce carbon emissions, transition to renewable energy sources, and implement sustainable practices. " +
			"The Paris Agreement represents a significant step forward in global climate action, but much more needs to be done to limit global warming and protect our planet for future generations.",
	},
	{
		Title: "Future of Remote Work",
		Text: "The COVID-19 pandemic has fundamentally transformed the way we think about work, accelerating the adoption of remote work practices across industries. " +
			"Companies that once required physical presence have discovered that many tasks can be performed effectively from home, leading to increased flexibility and work-life balance for employees. " +
			"This shift has also opened up new opportunities for businesses to access global talent pools and reduce overhead costs associated with maintaining large office spaces. " +
			"However, remote work also presents challenges, including the need for robust digital infrastructure, effective communication tools, and strategies to maintain team cohesion and company culture. " +
			"As we move forward, hybrid work models that combine remote and in-office work are likely to become the new standard, requiring organizations to adapt their management practices and invest in technology that supports distributed teams.",
	},
}

// All returns a copy of the built-in samples.
func All() []Sample {
	out := make([]Sample, len(builtin))
	copy(out, builtin)
	return out
}

// Pick rotates through the samples by Unix second.
func Pick(now time.Time) Sample {
	n := int64(len(builtin))
	i := now.Unix() % n
	if i < 0 {
		i += n
	}
	return builtin[i]
}
