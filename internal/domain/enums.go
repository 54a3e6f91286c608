package domain

// CustomerType classifies the estimate's owning party.
type CustomerType string

const (
	CustomerTypePerson       CustomerType = "person"
	CustomerTypeOrganization CustomerType = "organization"
)

// LineType discriminates the payload of an EstimateLine.
type LineType string

const (
	LineTypePart        LineType = "part"
	LineTypeLabor       LineType = "labor"
	LineTypeOtherCharge LineType = "other_charge"
)

// DocumentFormat identifies which adapter handled a document.
type DocumentFormat string

const (
	FormatMarkup DocumentFormat = "markup"
	FormatFlat   DocumentFormat = "flat"
)

// ImportStatus represents the lifecycle of an estimate import.
type ImportStatus string

const (
	ImportStatusPending   ImportStatus = "pending"
	ImportStatusCompleted ImportStatus = "completed"
	ImportStatusFailed    ImportStatus = "failed"
)

// Defaults applied when a document supplies no party data.
const (
	DefaultCustomerFirstName = "Unknown"
	DefaultCustomerLastName  = "Customer"
)
