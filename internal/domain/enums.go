package domain

// ProductionLine identifies a physical manufacturing line.
type ProductionLine string

const (
	LineMTL01  ProductionLine = "MTL-01"
	LineMTL02  ProductionLine = "MTL-02"
	LineMTL03  ProductionLine = "MTL-03"
	LineMTL04  ProductionLine = "MTL-04"
	LineMCO01  ProductionLine = "MCO-01"
	LineMCO02  ProductionLine = "MCO-02"
	LineMCO03  ProductionLine = "MCO-03"
	LineMCO04  ProductionLine = "MCO-04"
	LineMVIR01 ProductionLine = "MVIR-01"
	LineMTP01  ProductionLine = "MTP-01"
)

// DefaultLine is preselected for new plans.
const DefaultLine = LineMTL01

// ProductionLines is the closed set of lines in selection order.
var ProductionLines = []ProductionLine{
	LineMTL01, LineMTL02, LineMTL03, LineMTL04,
	LineMCO01, LineMCO02, LineMCO03, LineMCO04,
	LineMVIR01, LineMTP01,
}

// IsValid reports whether l belongs to ProductionLines.
func (l ProductionLine) IsValid() bool {
	for _, known := range ProductionLines {
		if l == known {
			return true
		}
	}
	return false
}

// StatusBucket groups plans by how close their production-entry deadline is.
type StatusBucket string

const (
	StatusLate     StatusBucket = "late"
	StatusDueToday StatusBucket = "due_today"
	StatusDueSoon  StatusBucket = "due_soon"
	StatusOnTrack  StatusBucket = "on_track"
)

// MergeStrategy selects how an imported batch treats ids already present.
type MergeStrategy string

const (
	// MergeDuplicate prepends every imported record, even on id collision.
	MergeDuplicate MergeStrategy = "duplicate"
	// MergeSkipExisting drops imported records whose id already exists.
	MergeSkipExisting MergeStrategy = "skip-existing"
	// MergeOverwrite replaces existing records in place; new ids are prepended.
	MergeOverwrite MergeStrategy = "overwrite"
)

// ValidMergeStrategies lists the accepted strategy names.
var ValidMergeStrategies = []MergeStrategy{MergeDuplicate, MergeSkipExisting, MergeOverwrite}

// ParseMergeStrategy maps a flag value to a strategy. Empty selects MergeDuplicate.
func ParseMergeStrategy(s string) (MergeStrategy, bool) {
	if s == "" {
		return MergeDuplicate, true
	}
	for _, v := range ValidMergeStrategies {
		if string(v) == s {
			return v, true
		}
	}
	return "", false
}
