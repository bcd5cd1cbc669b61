package combobox

// Validity is the owner-supplied validity of the input. A nil Valid means
// "not yet validated" and renders neutral.
type Validity struct {
	Valid   *bool
	Message string
}

// Valid is shorthand for a Validity built from a plain boolean.
func Valid(valid bool) Validity {
	return Validity{Valid: &valid}
}

// Invalid returns a failing Validity carrying message.
func Invalid(message string) Validity {
	invalid := false
	return Validity{Valid: &invalid, Message: message}
}

// Normalize returns the (valid, message) pair consumed by rendering.
func (v Validity) Normalize() (*bool, string) {
	if v.Valid == nil {
		return nil, v.Message
	}
	valid := *v.Valid
	return &valid, v.Message
}

// NormalizeValidity accepts either a bool, a *bool, a Validity, or nil and
// normalizes it to a (valid, message) pair. Unknown types are treated as
// unset.
func NormalizeValidity(v any) (*bool, string) {
	switch value := v.(type) {
	case bool:
		return &value, ""
	case *bool:
		if value == nil {
			return nil, ""
		}
		valid := *value
		return &valid, ""
	case Validity:
		return value.Normalize()
	case *Validity:
		if value == nil {
			return nil, ""
		}
		return value.Normalize()
	default:
		return nil, ""
	}
}

type validityReport struct {
	valid   *bool
	message string
}

func (r validityReport) equal(other validityReport) bool {
	if r.message != other.message {
		return false
	}
	if r.valid == nil || other.valid == nil {
		return r.valid == nil && other.valid == nil
	}
	return *r.valid == *other.valid
}

// checkValue computes the field validity for value. Disabled fields are never
// validated, and an empty optional field stays neutral.
func (c *Controller[T]) checkValue(value string) validityReport {
	p := c.props
	if p.Disabled {
		return validityReport{}
	}
	if value == "" {
		if p.Required {
			invalid := false
			return validityReport{valid: &invalid, message: c.message(MessageRequired)}
		}
		return validityReport{}
	}
	if p.CustomValidator != nil {
		ok, msg := p.CustomValidator(value)
		return validityReport{valid: &ok, message: msg}
	}
	ok := true
	return validityReport{valid: &ok}
}

// validate reports the field validity for value when it differs from the
// last reported state.
func (c *Controller[T]) validate(value string) {
	c.validatedValue = value
	report := c.checkValue(value)
	if report.equal(c.lastValidity) {
		return
	}
	c.lastValidity = report
	if c.callbacks.OnValidate != nil {
		c.callbacks.OnValidate(report.valid, report.message)
	}
}
