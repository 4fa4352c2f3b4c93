package prompts

import "fmt"

// ============================================================================
// Name Generation Prompt
// ============================================================================

// generationTemplate asks for a numbered list of bare names so the
// response can be parsed with a single pattern. Extensions are excluded
// here and appended after the availability filter.
const generationTemplate = `You are an expert domain name generator. Your task is to create domain name suggestions that closely match the user's input and follow the style and pattern of the sample domain names provided.

User Input Description:
"%s"

Sample Domain Names:
%s

Instructions:
- Generate 10 to 15 domain names that fit the user's input description.
- The names should be short, easy to understand, creative, memorable, and relevant to the input.
- Use similar word structures and language style as the samples.
- Avoid overly long or complicated names; keep them concise and simple.
- Do not repeat exact sample names.
- Provide only the domain name suggestions without any domain extensions (like .com, .net, .lk).
- Provide the domain names in a numbered list.

Suggested Domain Names:`

// GenerationPrompt builds the prompt for generating domain name
// candidates from a user description and sample names.
func GenerationPrompt(description, samples string) string {
	return fmt.Sprintf(generationTemplate, description, samples)
}

// ============================================================================
// Domain Detail Prompt
// ============================================================================

// descriptionTemplate requests a single JSON object. Models frequently
// return it wrapped in a code fence or with Python-style quoting, so
// the parser handles both.
const descriptionTemplate = `You are a branding and domain expert. Generate a JSON object in the following format. The description should be 50-100 words and it should describe how the domain name suits the user requirements:

{
    "domainName": "%s",
    "domainDescription": "...",
    "relatedFields": [ ... ]
}

The relatedFields array must contain 4 to 6 relevant business fields.

Domain name: %s
Prompt: %s`

// DescriptionPrompt builds the prompt for generating marketing details
// for a single domain name. The name passed in already carries its
// extension.
func DescriptionPrompt(domainName, description string) string {
	return fmt.Sprintf(descriptionTemplate, domainName, domainName, description)
}

// FallbackRelatedFields is used when the model output cannot be parsed
// into usable field values.
var FallbackRelatedFields = []string{"Business", "Technology", "Innovation", "Digital Services"}
