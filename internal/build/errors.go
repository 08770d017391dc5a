package build

import err "github.com/ava12/adoc/errors"

const (
	ErrUnhandledRule = err.BuildErrors + 10 + iota
	ErrUnexpectedValue
	ErrContentModel
	ErrMissingNode
)

func unhandledRuleError(rule string) error {
	return err.Internal(ErrUnhandledRule, "no action for rule %q", rule)
}

func unexpectedValueError(rule string, expected string, v any) error {
	return err.Internal(ErrUnexpectedValue, "rule %s: expecting %s, got %T", rule, expected, v)
}

func contentModelError(c string) error {
	return err.Internal(ErrContentModel, "cannot build block with context %q", c)
}

func missingNodeError(rule, child string) error {
	return err.Internal(ErrMissingNode, "rule %s: missing %s node", rule, child)
}
