package summarizer

const systemPrompt = `You are a journaling assistant that summarizes reflections.`

// userPromptTemplate embeds the transcript verbatim. The transcript is not
// escaped, so caller speech can steer the model.
const userPromptTemplate = `Summarize the following reflection. Extract energy level (low/medium/high) and list 3 gratitude points:
"%s"`
