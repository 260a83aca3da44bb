package nav

import "errors"

// DuplicateRouteError reports a second registration under an already taken
// name. It is a configuration defect: startup should fail, not retry.
type DuplicateRouteError struct {
	Name string
}

func (e *DuplicateRouteError) Error() string {
	return "nav: route already registered: " + e.Name
}

// MissingDefaultsError reports a Register call before Configure.
type MissingDefaultsError struct {
	Name string
}

func (e *MissingDefaultsError) Error() string {
	return "nav: register " + e.Name + " before configure"
}

var errEmptyRouteName = errors.New("nav: route name must not be empty")
