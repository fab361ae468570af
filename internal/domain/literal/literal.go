// Package literal extracts configuration objects from JS/TS config files
// without executing any project code. It evaluates a closed grammar of
// literal expressions only: strings, numbers, booleans, null, arrays, and
// nested objects. Anything outside that grammar degrades predictably - a
// bare identifier becomes its own name as a string, and every other
// expression form (call, template interpolation, spread) is dropped.
package literal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ErrNoExport is returned when the source contains neither a
// `module.exports = {...}` nor an `export default {...}` assignment.
var ErrNoExport = errors.New("no module.exports or export default object found")

// ParseModuleExport locates the exported object literal in a JS/TS config
// source and evaluates it into a map.
func ParseModuleExport(src string) (map[string]any, error) {
	for _, marker := range []string{"module.exports", "export default"} {
		idx := strings.Index(src, marker)
		if idx == -1 {
			continue
		}
		rest := src[idx+len(marker):]
		// Skip an optional `=` (module.exports) and whitespace.
		rest = strings.TrimLeft(rest, " \t\r\n=")
		if !strings.HasPrefix(rest, "{") {
			continue
		}
		p := &parser{src: rest}
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		obj, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("exported value is not an object literal")
		}
		return obj, nil
	}
	return nil, ErrNoExport
}

// ParseObject evaluates a standalone object literal (the text must start
// with `{` after leading whitespace).
func ParseObject(src string) (map[string]any, error) {
	p := &parser{src: src}
	p.skipSpace()
	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("value is not an object literal")
	}
	return obj, nil
}

// omitted marks expression forms outside the closed grammar. Values of this
// type are dropped from the enclosing object or array.
type omitted struct{}

type parser struct {
	src string
	pos int
}

func (p *parser) parseValue() (any, error) {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return nil, fmt.Errorf("unexpected end of input at offset %d", p.pos)
	}
	switch c := p.src[p.pos]; {
	case c == '{':
		return p.parseObject()
	case c == '[':
		return p.parseArray()
	case c == '\'' || c == '"':
		return p.parseString(c)
	case c == '`':
		return p.parseTemplate()
	case c == '-' || c == '+' || unicode.IsDigit(rune(c)):
		return p.parseNumber()
	case isIdentStart(c):
		return p.parseIdentifier()
	default:
		// Unknown expression form: consume to the next delimiter and omit.
		p.skipExpression()
		return omitted{}, nil
	}
}

func (p *parser) parseObject() (any, error) {
	obj := map[string]any{}
	p.pos++ // consume '{'
	for {
		p.skipSpace()
		if p.pos >= len(p.src) {
			return nil, fmt.Errorf("unterminated object literal")
		}
		if p.src[p.pos] == '}' {
			p.pos++
			return obj, nil
		}
		if p.src[p.pos] == ',' {
			p.pos++
			continue
		}

		// Spread of unknown origin degrades to omission.
		if strings.HasPrefix(p.src[p.pos:], "...") {
			p.pos += 3
			p.skipExpression()
			continue
		}

		key, err := p.parseKey()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if p.pos >= len(p.src) || p.src[p.pos] != ':' {
			// Shorthand property ({width}) has no literal value; omit it.
			continue
		}
		p.pos++ // consume ':'
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		if _, skip := v.(omitted); !skip {
			obj[key] = v
		}
	}
}

func (p *parser) parseArray() (any, error) {
	var arr []any
	p.pos++ // consume '['
	for {
		p.skipSpace()
		if p.pos >= len(p.src) {
			return nil, fmt.Errorf("unterminated array literal")
		}
		switch p.src[p.pos] {
		case ']':
			p.pos++
			if arr == nil {
				arr = []any{}
			}
			return arr, nil
		case ',':
			p.pos++
			continue
		}
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		if _, skip := v.(omitted); !skip {
			arr = append(arr, v)
		}
	}
}

func (p *parser) parseKey() (string, error) {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return "", fmt.Errorf("unexpected end of input in object key")
	}
	if c := p.src[p.pos]; c == '\'' || c == '"' {
		v, err := p.parseString(c)
		if err != nil {
			return "", err
		}
		return v.(string), nil
	}
	start := p.pos
	for p.pos < len(p.src) && isIdentPart(p.src[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		return "", fmt.Errorf("invalid object key at offset %d", p.pos)
	}
	return p.src[start:p.pos], nil
}

func (p *parser) parseString(quote byte) (any, error) {
	p.pos++ // consume opening quote
	var b strings.Builder
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch c {
		case '\\':
			if p.pos+1 < len(p.src) {
				b.WriteByte(unescape(p.src[p.pos+1]))
				p.pos += 2
				continue
			}
			p.pos++
		case quote:
			p.pos++
			return b.String(), nil
		default:
			b.WriteByte(c)
			p.pos++
		}
	}
	return nil, fmt.Errorf("unterminated string literal")
}

// parseTemplate handles backtick strings. Templates with interpolation are
// outside the closed grammar and degrade to omission.
func (p *parser) parseTemplate() (any, error) {
	p.pos++ // consume '`'
	var b strings.Builder
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch {
		case c == '\\' && p.pos+1 < len(p.src):
			b.WriteByte(unescape(p.src[p.pos+1]))
			p.pos += 2
		case c == '$' && p.pos+1 < len(p.src) && p.src[p.pos+1] == '{':
			// Interpolation: skip to the closing backtick, drop the value.
			for p.pos < len(p.src) && p.src[p.pos] != '`' {
				p.pos++
			}
			if p.pos < len(p.src) {
				p.pos++
			}
			return omitted{}, nil
		case c == '`':
			p.pos++
			return b.String(), nil
		default:
			b.WriteByte(c)
			p.pos++
		}
	}
	return nil, fmt.Errorf("unterminated template literal")
}

func (p *parser) parseNumber() (any, error) {
	start := p.pos
	if c := p.src[p.pos]; c == '-' || c == '+' {
		p.pos++
	}
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if unicode.IsDigit(rune(c)) || c == '.' || c == 'e' || c == 'E' ||
			c == 'x' || c == 'X' || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F') {
			p.pos++
			continue
		}
		break
	}
	text := p.src[start:p.pos]
	if i, err := strconv.ParseInt(text, 0, 64); err == nil {
		return int(i), nil
	}
	if f, err := strconv.ParseFloat(text, 64); err == nil {
		return f, nil
	}
	return nil, fmt.Errorf("invalid number literal %q", text)
}

// parseIdentifier handles the keywords true/false/null/undefined and bare
// identifiers. A bare identifier degrades to its name as a plain string -
// unless it is followed by `(` or `.`, which makes it a call or member
// expression and therefore omitted.
func (p *parser) parseIdentifier() (any, error) {
	start := p.pos
	for p.pos < len(p.src) && isIdentPart(p.src[p.pos]) {
		p.pos++
	}
	name := p.src[start:p.pos]

	rest := strings.TrimLeft(p.src[p.pos:], " \t")
	if strings.HasPrefix(rest, "(") || strings.HasPrefix(rest, ".") {
		p.skipExpression()
		return omitted{}, nil
	}

	switch name {
	case "true":
		return true, nil
	case "false":
		return false, nil
	case "null", "undefined":
		return nil, nil
	default:
		return name, nil
	}
}

// skipExpression consumes a non-literal expression up to the next comma or
// closing bracket at the current nesting depth.
func (p *parser) skipExpression() {
	depth := 0
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			if depth == 0 {
				return
			}
			depth--
		case ',':
			if depth == 0 {
				return
			}
		case '\'', '"', '`':
			q := p.src[p.pos]
			p.pos++
			for p.pos < len(p.src) && p.src[p.pos] != q {
				if p.src[p.pos] == '\\' {
					p.pos++
				}
				p.pos++
			}
		}
		p.pos++
	}
}

// skipSpace consumes whitespace and // and /* */ comments.
func (p *parser) skipSpace() {
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			p.pos++
		case c == '/' && p.pos+1 < len(p.src) && p.src[p.pos+1] == '/':
			for p.pos < len(p.src) && p.src[p.pos] != '\n' {
				p.pos++
			}
		case c == '/' && p.pos+1 < len(p.src) && p.src[p.pos+1] == '*':
			end := strings.Index(p.src[p.pos+2:], "*/")
			if end == -1 {
				p.pos = len(p.src)
				return
			}
			p.pos += end + 4
		default:
			return
		}
	}
}

func unescape(c byte) byte {
	switch c {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	default:
		return c
	}
}

func isIdentStart(c byte) bool {
	return c == '_' || c == '$' || unicode.IsLetter(rune(c))
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || unicode.IsDigit(rune(c))
}
