package llm

import "fmt"

// SystemMessage is the role instruction sent alongside every completion
// request on providers that support a distinct system turn.
const SystemMessage = "You are a coding assistant."

// promptTemplate wraps the user's request with the component-generation
// guidelines. The model is steered toward returning a single JSX block
// (optionally with a fenced CSS block) so extraction can find it.
const promptTemplate = `
You are an AI assistant specialized in generating React components.

Your job is to create clean, optimized, and production-ready React JSX components using Tailwind CSS based entirely on user prompts.

Guidelines:
- Always respond with valid React component code.
- Use Tailwind CSS for all styling.
- Avoid unnecessary explanations unless the user asks for them.
- Focus only on React component generation, not backend code.


Prompt:
%s
`

// BuildPrompt produces the full instruction prompt for the given user
// request.
func BuildPrompt(userPrompt string) string {
	return fmt.Sprintf(promptTemplate, userPrompt)
}
