package domain

import dErrors "paynet/pkg/domain-errors"

// UserType names a tier of the distribution hierarchy.
type UserType string

const (
	UserTypeMasterDistributor UserType = "master_distributor"
	UserTypeDistributor       UserType = "distributor"
	UserTypeRetailer          UserType = "retailer"
)

// ParseUserType accepts the wire names plus the short aliases used by the CLI.
func ParseUserType(s string) (UserType, error) {
	switch s {
	case "master_distributor", "md":
		return UserTypeMasterDistributor, nil
	case "distributor":
		return UserTypeDistributor, nil
	case "retailer", "user":
		return UserTypeRetailer, nil
	}
	return "", dErrors.New(dErrors.CodeInvalidInput, "user type must be one of master_distributor, distributor, retailer")
}

// Label is the human-readable name used in messages.
func (t UserType) Label() string {
	switch t {
	case UserTypeMasterDistributor:
		return "master distributor"
	case UserTypeDistributor:
		return "distributor"
	case UserTypeRetailer:
		return "retailer"
	}
	return string(t)
}

// PathSegment is the segment the upstream uses for this tier in lookup URLs.
func (t UserType) PathSegment() string {
	switch t {
	case UserTypeMasterDistributor:
		return "md"
	case UserTypeRetailer:
		return "user"
	}
	return string(t)
}

// NotFoundMessage is the tier-specific text shown when a lookup misses.
func (t UserType) NotFoundMessage() string {
	return t.Label() + " not found"
}
