package types

// Address is a provider-neutral reverse geocoding result.
// Empty strings mean the provider did not return the component.
type Address struct {
	City             string
	Town             string
	Village          string
	Country          string
	FormattedAddress string
}
