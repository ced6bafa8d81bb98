package lint

import (
	"context"
	"strings"

	"github.com/yaklabco/gojslint/pkg/config"
	"github.com/yaklabco/gojslint/pkg/fix"
	"github.com/yaklabco/gojslint/pkg/jsast"
)

// RuleContext provides all context needed by a rule to perform linting.
// A rule's Create function receives the context, captures it in its visitor
// closures, and calls Report as the dispatcher walks the tree.
//
// Design note: RuleContext stores context.Context as a field (Ctx) rather than
// passing it as a method parameter. This is acceptable because RuleContext is
// a short-lived parameter object created per-rule-invocation, not a long-lived
// struct. This design keeps visitor signatures to a single node parameter
// while still providing cancellation support via the Cancelled() helper.
type RuleContext struct {
	// Ctx is the context for cancellation and timeouts.
	Ctx context.Context

	// File is the parsed FileSnapshot.
	File *jsast.FileSnapshot

	// Root is the AST root node (convenience alias for File.Root).
	Root *jsast.Node

	rule         *Rule
	severity     config.Severity
	options      map[string]any
	suppressions *SuppressionSet
	fixer        fix.Fixer
	messages     []Diagnostic
}

// NewRuleContext creates a RuleContext for one rule's run over one file.
func NewRuleContext(
	ctx context.Context,
	file *jsast.FileSnapshot,
	resolved ResolvedRule,
	suppressions *SuppressionSet,
) *RuleContext {
	var root *jsast.Node
	if file != nil {
		root = file.Root
	}

	return &RuleContext{
		Ctx:          ctx,
		File:         file,
		Root:         root,
		rule:         resolved.Rule,
		severity:     resolved.Severity,
		options:      resolved.Options,
		suppressions: suppressions,
	}
}

// Cancelled returns true if the context has been cancelled.
func (rc *RuleContext) Cancelled() bool {
	select {
	case <-rc.Ctx.Done():
		return true
	default:
		return false
	}
}

// Report records a diagnostic described by desc, unless it is filtered.
//
// The message identifier must name an entry in the rule's Messages map;
// an unknown identifier drops the report. A report is also dropped when a
// suppression directive covers the node's starting line or the rule's
// resolved severity is off.
//
// Reports against the program node (or a nil node) are anchored at the
// first statement of the file, or line 1 when the file has no statements.
// The suppression check uses the node's own line, before anchoring.
//
// A fix is evaluated only for fixable rules; when it produces an edit the
// diagnostic is marked fixable and any suggestions are ignored.
func (rc *RuleContext) Report(desc ReportDescriptor) {
	template, known := rc.rule.Messages[desc.MessageID]
	if !known {
		return
	}
	message := renderMessage(template, desc.Data)

	pos := rc.nodePosition(desc.Node)
	if rc.suppressions.IsSuppressed(rc.rule.Name, pos.StartLine) {
		return
	}

	if rc.severity == config.SeverityOff || !rc.severity.IsValid() {
		return
	}

	kind := jsast.KindProgram
	if desc.Node != nil {
		kind = desc.Node.Kind
	}
	if kind == jsast.KindProgram {
		pos = rc.fileAnchor()
	}

	var edit *fix.TextEdit
	if rc.rule.Fixable && desc.Fix != nil {
		edit = desc.Fix(&rc.fixer)
	}

	var suggestions []Suggestion
	if edit == nil {
		for _, s := range desc.Suggestions {
			var suggested *fix.TextEdit
			if s.Fix != nil {
				suggested = s.Fix(&rc.fixer)
			}
			suggestions = append(suggestions, Suggestion{
				Description: s.Description,
				Fix:         suggested,
			})
		}
	}

	fixability := FixabilityManual
	if edit != nil {
		fixability = FixabilityFixable
	}

	rc.messages = append(rc.messages, Diagnostic{
		RuleID:      rc.rule.Name,
		Severity:    rc.severity,
		Category:    rc.rule.Category,
		Kind:        rc.rule.Kind.String(),
		Fixability:  fixability,
		Message:     message,
		Line:        pos.StartLine,
		Column:      pos.StartColumn,
		EndLine:     pos.EndLine,
		EndColumn:   pos.EndColumn,
		NodeKind:    kind.String(),
		Fix:         edit,
		Suggestions: suggestions,
	})
}

// takeMessages moves the accumulated diagnostics out of the context.
// Ownership transfers to the caller; the buffer is not copied.
func (rc *RuleContext) takeMessages() []Diagnostic {
	messages := rc.messages
	rc.messages = nil
	return messages
}

// nodePosition returns the raw line/column span for a reported node.
// A nil node positions at the top of the file.
func (rc *RuleContext) nodePosition(node *jsast.Node) jsast.SourcePosition {
	if node == nil {
		return jsast.SourcePosition{StartLine: 1, StartColumn: 1, EndLine: 1, EndColumn: 1}
	}
	return node.SourcePosition()
}

// fileAnchor returns the point position of the file's first statement,
// or line 1 column 1 for files with no statements.
func (rc *RuleContext) fileAnchor() jsast.SourcePosition {
	if first := jsast.FirstStatement(rc.Root); first != nil {
		start := first.SourcePosition().Start()
		return jsast.SourcePosition{
			StartLine:   start.Line,
			StartColumn: start.Column,
			EndLine:     start.Line,
			EndColumn:   start.Column,
		}
	}
	return jsast.SourcePosition{StartLine: 1, StartColumn: 1, EndLine: 1, EndColumn: 1}
}

// renderMessage substitutes {{key}} placeholders in a message template.
// Placeholders with no entry in data are left literal.
func renderMessage(template string, data map[string]string) string {
	if !strings.Contains(template, "{{") {
		return template
	}

	var b strings.Builder
	rest := template
	for {
		open := strings.Index(rest, "{{")
		if open < 0 {
			b.WriteString(rest)
			break
		}
		closing := strings.Index(rest[open:], "}}")
		if closing < 0 {
			b.WriteString(rest)
			break
		}

		key := rest[open+2 : open+closing]
		if value, ok := data[key]; ok {
			b.WriteString(rest[:open])
			b.WriteString(value)
		} else {
			b.WriteString(rest[:open+closing+2])
		}
		rest = rest[open+closing+2:]
	}
	return b.String()
}

// Option returns a rule-specific option value, or the default if not set.
func (rc *RuleContext) Option(key string, defaultValue any) any {
	if rc.options == nil {
		return defaultValue
	}
	if v, ok := rc.options[key]; ok {
		return v
	}
	return defaultValue
}

// OptionInt returns a rule-specific integer option, or the default.
func (rc *RuleContext) OptionInt(key string, defaultValue int) int {
	v := rc.Option(key, defaultValue)
	switch val := v.(type) {
	case int:
		return val
	case float64:
		return int(val)
	default:
		return defaultValue
	}
}

// OptionString returns a rule-specific string option, or the default.
func (rc *RuleContext) OptionString(key string, defaultValue string) string {
	v := rc.Option(key, defaultValue)
	if s, ok := v.(string); ok {
		return s
	}
	return defaultValue
}

// OptionBool returns a rule-specific boolean option, or the default.
func (rc *RuleContext) OptionBool(key string, defaultValue bool) bool {
	v := rc.Option(key, defaultValue)
	if b, ok := v.(bool); ok {
		return b
	}
	return defaultValue
}

// OptionStringSlice returns a rule-specific string slice option, or the default.
func (rc *RuleContext) OptionStringSlice(key string, defaultValue []string) []string {
	v := rc.Option(key, defaultValue)
	if slice, ok := v.([]string); ok {
		return slice
	}
	// Handle []interface{} from YAML parsing
	if iface, ok := v.([]interface{}); ok {
		result := make([]string, 0, len(iface))
		for _, item := range iface {
			if s, ok := item.(string); ok {
				result = append(result, s)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return defaultValue
}
