package entity

// Identity is the authenticated caller as seen by the request layer. Depending on
// how the user signed in (password, federated exchange, or a token minted by the
// old Node backend) different fields are present.
type Identity struct {
	ProviderUID string // federated provider subject id
	UserID      string // backend user id
	AltID       string // legacy "_id" carried by tokens from the previous backend
	Email       string
	DisplayName string
}
