package service

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/sahan/dominious/internal/domain"
)

// Models answer the detail prompt with anything from clean JSON to a
// Python dict inside a code fence with trailing commentary. The parser
// tries strategies in order of strictness and reports ok=false only
// when none of them yields a usable description.

var (
	codeBlockPattern   = regexp.MustCompile("(?is)```(?:json|python)?\\s*(\\{[\\s\\S]*?\\})\\s*```")
	descriptionPattern = regexp.MustCompile(`(?i)["']?domainDescription["']?\s*[:=]\s*["']([^"']+)["']`)
	namePattern        = regexp.MustCompile(`(?i)["']?domainName["']?\s*[:=]\s*["']([^"']+)["']`)
	fieldsPattern      = regexp.MustCompile(`(?i)["']?relatedFields["']?\s*[:=]\s*\[([^\]]*)\]`)
	quotedItemPattern  = regexp.MustCompile(`["']([^"']+)["']`)
	bareKeyPattern     = regexp.MustCompile(`([{,]\s*)([A-Za-z_][A-Za-z0-9_]*)(\s*:)`)
	trailingComma      = regexp.MustCompile(`,\s*([}\]])`)
)

// parseDetail extracts a DomainDetail from raw model output.
func parseDetail(output string) (domain.DomainDetail, bool) {
	block, found := extractJSONBlock(output)
	if found {
		candidates := []string{
			block,
			normalizePythonLiteral(block),
			repairBareKeys(block),
			repairBareKeys(normalizePythonLiteral(block)),
		}
		for _, candidate := range candidates {
			if detail, ok := unmarshalDetail(candidate); ok {
				return detail, true
			}
		}
	}

	return extractDetailFields(output)
}

// extractJSONBlock locates the most plausible JSON object in the
// output: a fenced code block wins, otherwise the last balanced brace
// pair (models tend to restate the template first and answer last).
func extractJSONBlock(output string) (string, bool) {
	if m := codeBlockPattern.FindStringSubmatch(output); m != nil {
		return m[1], true
	}

	var last string
	for i := 0; i < len(output); i++ {
		if output[i] != '{' {
			continue
		}
		depth := 0
		for j := i; j < len(output); j++ {
			switch output[j] {
			case '{':
				depth++
			case '}':
				depth--
				if depth == 0 {
					last = output[i : j+1]
					i = j
					j = len(output)
				}
			}
		}
	}

	if last == "" {
		return "", false
	}
	return last, true
}

// detailEnvelope tolerates relatedFields arriving as either a string
// array or a single string.
type detailEnvelope struct {
	DomainName        string          `json:"domainName"`
	DomainDescription string          `json:"domainDescription"`
	RelatedFields     json.RawMessage `json:"relatedFields"`
}

func unmarshalDetail(text string) (domain.DomainDetail, bool) {
	var env detailEnvelope
	if err := json.Unmarshal([]byte(text), &env); err != nil {
		return domain.DomainDetail{}, false
	}
	if strings.TrimSpace(env.DomainDescription) == "" {
		return domain.DomainDetail{}, false
	}

	detail := domain.DomainDetail{
		DomainName:        env.DomainName,
		DomainDescription: strings.TrimSpace(env.DomainDescription),
	}

	if len(env.RelatedFields) > 0 {
		var fields []string
		if err := json.Unmarshal(env.RelatedFields, &fields); err == nil {
			detail.RelatedFields = cleanFields(fields)
		} else {
			var single string
			if err := json.Unmarshal(env.RelatedFields, &single); err == nil && single != "" {
				detail.RelatedFields = cleanFields(strings.Split(single, ","))
			}
		}
	}

	return detail, true
}

// normalizePythonLiteral rewrites a Python dict literal into JSON:
// single-quoted strings become double-quoted, True/False/None become
// their JSON forms, comments and trailing commas are dropped.
func normalizePythonLiteral(text string) string {
	var b strings.Builder
	inDouble := false
	inSingle := false

	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case inDouble:
			b.WriteByte(c)
			if c == '\\' && i+1 < len(text) {
				i++
				b.WriteByte(text[i])
			} else if c == '"' {
				inDouble = false
			}
		case inSingle:
			switch c {
			case '\\':
				if i+1 < len(text) {
					i++
					next := text[i]
					if next == '\'' {
						b.WriteByte(next)
					} else {
						b.WriteByte('\\')
						b.WriteByte(next)
					}
				}
			case '\'':
				b.WriteByte('"')
				inSingle = false
			case '"':
				b.WriteString(`\"`)
			default:
				b.WriteByte(c)
			}
		case c == '"':
			inDouble = true
			b.WriteByte(c)
		case c == '\'':
			inSingle = true
			b.WriteByte('"')
		case c == '#':
			for i < len(text) && text[i] != '\n' {
				i++
			}
			if i < len(text) {
				b.WriteByte('\n')
			}
		default:
			b.WriteByte(c)
		}
	}

	out := b.String()
	out = strings.ReplaceAll(out, "True", "true")
	out = strings.ReplaceAll(out, "False", "false")
	out = strings.ReplaceAll(out, "None", "null")
	out = trailingComma.ReplaceAllString(out, "$1")
	return out
}

// repairBareKeys quotes unquoted object keys so near-JSON output like
// {domainName: "x.lk"} survives parsing.
func repairBareKeys(text string) string {
	out := bareKeyPattern.ReplaceAllString(text, `$1"$2"$3`)
	return trailingComma.ReplaceAllString(out, "$1")
}

// extractDetailFields is the last resort: pull individual fields out
// of the raw text with regular expressions. Only the description is
// required; the caller supplies fallback related fields.
func extractDetailFields(output string) (domain.DomainDetail, bool) {
	descMatch := descriptionPattern.FindStringSubmatch(output)
	if descMatch == nil {
		return domain.DomainDetail{}, false
	}

	detail := domain.DomainDetail{
		DomainDescription: strings.TrimSpace(descMatch[1]),
	}
	if detail.DomainDescription == "" {
		return domain.DomainDetail{}, false
	}

	if m := namePattern.FindStringSubmatch(output); m != nil {
		detail.DomainName = strings.TrimSpace(m[1])
	}
	if m := fieldsPattern.FindStringSubmatch(output); m != nil {
		var fields []string
		for _, item := range quotedItemPattern.FindAllStringSubmatch(m[1], -1) {
			fields = append(fields, item[1])
		}
		detail.RelatedFields = cleanFields(fields)
	}

	return detail, true
}

func cleanFields(fields []string) []string {
	var out []string
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" || f == "..." {
			continue
		}
		out = append(out, f)
	}
	return out
}
