package model

// Canonical column names referenced by name throughout the pipeline.
const (
	ColDestinationStore = "Destination Store"
	ColAttention        = "Attention"
	ColPONumber         = "PO FROM LOBLAW #"
	ColEstimatedShip    = "Estimated Ship Date"
	ColArrived          = "Arrived @ Warehouse"
	ColStorageStarts    = "Storage Starts"
	ColStorageEnds      = "Storage Ends"
	ColScheduledDate    = "Scheduled Date"
	ColScheduledTime    = "Scheduled Time"
	ColLocation         = "Trailer or Warehouse"
	ColDateStripped     = "Date Stripped"
	ColDaysInStorage    = "# Days In Storage"
	ColSquareFootage    = "Square Footage of Case"
	ColStorageCharge    = "Storage Charge"
	ColExtendedPrice    = "Extended Price"
)

// ColumnOrder fixed canonical column order for the consolidated table
var ColumnOrder = []string{
	ColDestinationStore, ColAttention, ColPONumber,
	"Shipper Order #", "Line Up #", "Case #", "Case Model #", "Serial #",
	ColEstimatedShip, ColArrived, ColStorageStarts,
	ColStorageEnds, ColScheduledDate, ColScheduledTime, "Warehouse Location",
	ColLocation, "Original order #", "Original Trailer #",
	"Touched / not Touched", ColDateStripped, "Damage Y / N",
	"Delivery Order #", "Delivery Trailer #", ColDaysInStorage,
	ColSquareFootage, ColStorageCharge, ColExtendedPrice,
	"Department", "LH Gable", "RH Gable", "No Gable",
}

// DateColumns columns rendered at date-only precision
var DateColumns = []string{
	ColEstimatedShip, ColArrived, ColStorageStarts,
	ColStorageEnds, ColScheduledDate, ColDateStripped,
}

// CoercedDateColumns columns run through the date coercion pass
var CoercedDateColumns = []string{
	ColStorageStarts, ColStorageEnds, ColEstimatedShip, ColArrived,
}

// NumericColumns columns extracted as numbers; identifier columns stay
// strings so leading zeros survive
var NumericColumns = []string{
	ColSquareFootage, ColStorageCharge, ColDaysInStorage,
}

// HiddenColumns processing-only columns dropped before the workbook is saved
var HiddenColumns = []string{
	ColEstimatedShip, ColLocation, "Original order #", "Original Trailer #",
	"Touched / not Touched", ColDateStripped, "Delivery Order #",
	"Department", "LH Gable", "RH Gable", "No Gable",
}

// ValidLocations accepted lower-cased location statuses
var ValidLocations = []string{"trailer", "warehouse", "transferred"}

// IsCanonicalColumn reports whether name is part of the fixed column order
func IsCanonicalColumn(name string) bool {
	for _, c := range ColumnOrder {
		if c == name {
			return true
		}
	}
	return false
}

// IsNumericColumn reports whether name is extracted as a number
func IsNumericColumn(name string) bool {
	for _, c := range NumericColumns {
		if c == name {
			return true
		}
	}
	return false
}

// IsDateColumn reports whether name is rendered at date precision
func IsDateColumn(name string) bool {
	for _, c := range DateColumns {
		if c == name {
			return true
		}
	}
	return false
}
