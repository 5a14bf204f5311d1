package skeleton

import (
	_ "embed"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	cuejson "cuelang.org/go/encoding/json"
)

//go:embed manifest.cue
var manifestSchema []byte

// ManifestValidationError lists every schema violation in a manifest.
type ManifestValidationError struct {
	// Location is the file the manifest was read from, if any.
	Location string

	// Details is the formatted CUE error output, one violation per line.
	Details string

	Cause error
}

func (e *ManifestValidationError) Error() string {
	if e.Location != "" {
		return fmt.Sprintf("manifest %s does not match schema:\n%s", e.Location, e.Details)
	}
	return fmt.Sprintf("manifest does not match schema:\n%s", e.Details)
}

func (e *ManifestValidationError) Unwrap() error {
	return e.Cause
}

// ValidateManifest checks package.json content against the embedded
// #Manifest schema. location is only used for error messages.
func ValidateManifest(location string, data []byte) error {
	ctx := cuecontext.New()

	schema := ctx.CompileBytes(manifestSchema, cue.Filename("manifest.cue"))
	if schema.Err() != nil {
		return fmt.Errorf("compiling manifest schema: %w", schema.Err())
	}
	def := schema.LookupPath(cue.ParsePath("#Manifest"))

	if location == "" {
		location = "package.json"
	}
	expr, err := cuejson.Extract(location, data)
	if err != nil {
		return &ManifestValidationError{
			Location: location,
			Details:  strings.TrimSpace(cueerrors.Details(err, nil)),
			Cause:    err,
		}
	}

	value := ctx.BuildExpr(expr)
	if err := def.Unify(value).Validate(cue.Concrete(true)); err != nil {
		return &ManifestValidationError{
			Location: location,
			Details:  strings.TrimSpace(cueerrors.Details(err, nil)),
			Cause:    err,
		}
	}

	return nil
}
