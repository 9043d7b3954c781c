package domain

// Column length limits
const (
	MaxParkingSpotNumberLength = 10
	MaxLicensePlateCarLength   = 7
	MaxCarAttributeLength      = 70
	MaxResponsibleNameLength   = 130
	MaxApartmentLength         = 30
	MaxBlockLength             = 30
)

// JSON field names of a parking spot
const (
	FieldID                = "id"
	FieldParkingSpotNumber = "parkingSpotNumber"
	FieldLicensePlateCar   = "licensePlateCar"
	FieldBrandCar          = "brandCar"
	FieldModelCar          = "modelCar"
	FieldColorCar          = "colorCar"
	FieldRegistrationDate  = "registrationDate"
	FieldResponsibleName   = "responsibleName"
	FieldApartment         = "apartment"
	FieldBlock             = "block"
)

// Paging defaults
const (
	DefaultPage      = 0
	DefaultPageSize  = 10
	MaxPageSize      = 2000
	DefaultSortField = FieldID
)

// Uniqueness rules, used as the conflict metric label
const (
	RuleLicensePlateCar   = "license_plate_car"
	RuleParkingSpotNumber = "parking_spot_number"
	RuleApartmentBlock    = "apartment_block"
)
