package config

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"

	"github.com/jmgilman/go/exceptions/errors"
)

//go:embed schema.cue
var schemaSource string

// Issue is a single schema violation.
type Issue struct {
	// Path is the offending field, e.g. "max_frames".
	Path string

	// Message is the human-readable violation.
	Message string
}

func (i Issue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// Validate checks cfg against the configuration schema.
// Returns CodeInvalidConfig with the list of issues attached on failure.
func Validate(ctx context.Context, cfg Config) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, errors.CodeInvalidConfig, "context cancelled")
	}

	cueCtx := cuecontext.New()
	schema := cueCtx.CompileString(schemaSource).LookupPath(cue.ParsePath("#Config"))
	if err := schema.Err(); err != nil {
		return errors.Wrap(err, errors.CodeInternal, "configuration schema is invalid")
	}

	data := cueCtx.Encode(cfg)
	if err := data.Err(); err != nil {
		return errors.Wrap(err, errors.CodeInvalidConfig, "failed to encode configuration")
	}

	unified := schema.Unify(data)
	if err := unified.Validate(cue.Concrete(true), cue.All()); err != nil {
		issues := extractIssues(err)
		return errors.WrapWithContext(
			err,
			errors.CodeInvalidConfig,
			fmt.Sprintf("configuration validation failed: %s", joinIssues(issues)),
			map[string]interface{}{"issues": issues},
		)
	}

	return nil
}

func extractIssues(err error) []Issue {
	var issues []Issue
	for _, e := range cueerrors.Errors(err) {
		format, args := e.Msg()
		issues = append(issues, Issue{
			Path:    strings.Join(e.Path(), "."),
			Message: fmt.Sprintf(format, args...),
		})
	}
	return issues
}

func joinIssues(issues []Issue) string {
	parts := make([]string, 0, len(issues))
	for _, i := range issues {
		parts = append(parts, i.String())
	}
	return strings.Join(parts, "; ")
}
