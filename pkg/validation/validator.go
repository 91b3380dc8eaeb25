package validation

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/dd0wney/cluso-resilience/pkg/topology"
)

var (
	// validate is a singleton validator instance
	validate *validator.Validate

	// Validation constants
	MaxNodeIDLength = 64
	MaxLabelLength  = 100
	MaxNodes        = 10000
	MaxEdges        = 50000

	// Node ids are canvas-friendly slugs
	idPattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]*$`)
)

func init() {
	validate = validator.New()
}

// ValidateTopologySpec validates a topology before it is loaded into the
// store. Struct tags cover shape and required fields; the extra checks cover
// id syntax and overall size limits.
func ValidateTopologySpec(spec *topology.TopologySpec) error {
	if spec == nil {
		return errors.New("topology cannot be nil")
	}

	if err := validate.Struct(spec); err != nil {
		return formatValidationError(err)
	}

	if len(spec.Nodes) > MaxNodes {
		return fmt.Errorf("Nodes: maximum %d nodes allowed, got %d", MaxNodes, len(spec.Nodes))
	}
	if len(spec.Edges) > MaxEdges {
		return fmt.Errorf("Edges: maximum %d edges allowed, got %d", MaxEdges, len(spec.Edges))
	}

	for i, n := range spec.Nodes {
		if err := ValidateNodeID(n.ID); err != nil {
			return fmt.Errorf("Nodes[%d]: %w", i, err)
		}
		if len(n.Label) > MaxLabelLength {
			return fmt.Errorf("Nodes[%d]: label exceeds maximum length of %d characters", i, MaxLabelLength)
		}
	}

	for i, e := range spec.Edges {
		if err := ValidateNodeID(e.Source); err != nil {
			return fmt.Errorf("Edges[%d]: source: %w", i, err)
		}
		if err := ValidateNodeID(e.Target); err != nil {
			return fmt.Errorf("Edges[%d]: target: %w", i, err)
		}
		if e.Source == e.Target {
			return fmt.Errorf("Edges[%d]: self-loop %q is not allowed", i, e.Source)
		}
	}

	return nil
}

// ValidateNodeID validates a node identifier
func ValidateNodeID(id string) error {
	if id == "" {
		return errors.New("node id cannot be empty")
	}
	if len(id) > MaxNodeIDLength {
		return fmt.Errorf("node id '%s' exceeds maximum length of %d characters", id, MaxNodeIDLength)
	}
	if !idPattern.MatchString(id) {
		return fmt.Errorf("node id '%s' is invalid (must start alphanumeric, followed by alphanumeric, underscore, or hyphen)", id)
	}
	return nil
}

// formatValidationError converts validator errors to a more user-friendly format
func formatValidationError(err error) error {
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	// Return the first validation error in a user-friendly format
	for _, e := range validationErrs {
		field := e.Field()
		tag := e.Tag()
		param := e.Param()

		switch tag {
		case "required":
			return fmt.Errorf("%s: field is required", field)
		case "min":
			return fmt.Errorf("%s: must be at least %s", field, param)
		case "max":
			return fmt.Errorf("%s: must not exceed %s", field, param)
		case "oneof":
			return fmt.Errorf("%s: must be one of [%s]", field, param)
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, tag)
		}
	}

	return err
}
