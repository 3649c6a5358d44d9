package processor

// Outcome is the result of processing one listed key.
type Outcome string

// Outcomes of a listed key.
const (
	OutcomeIneligible           Outcome = "ineligible"
	OutcomeInvalidPattern       Outcome = "invalid_pattern"
	OutcomeRejected             Outcome = "rejected"
	OutcomePretended            Outcome = "pretended"
	OutcomeCopied               Outcome = "copied"
	OutcomeMissingEncryptionKey Outcome = "missing_encryption_key"
	OutcomeCopyFailed           Outcome = "copy_failed"
)

// Summary counts the outcomes of one run.
//
// Discovered = Eligible + Ineligible + InvalidPattern and
// Eligible = Succeeded + Failed + Pretended, where Failed is the sum of
// Rejected, MissingEncryptionKey and CopyFailed.
type Summary struct {
	Bucket   string `yaml:"bucket"`
	Prefix   string `yaml:"prefix"`
	Endpoint string `yaml:"endpoint"`
	Pretend  bool   `yaml:"pretend"`

	Discovered     int `yaml:"discovered"`
	Eligible       int `yaml:"eligible"`
	Ineligible     int `yaml:"ineligible"`
	InvalidPattern int `yaml:"invalidPattern"`
	Pretended      int `yaml:"pretended"`
	Succeeded      int `yaml:"succeeded"`
	Failed         int `yaml:"failed"`

	Rejected             int `yaml:"rejected"`
	MissingEncryptionKey int `yaml:"missingEncryptionKey"`
	CopyFailed           int `yaml:"copyFailed"`
}

// record folds one outcome into the summary.
func (s *Summary) record(o Outcome) {
	switch o {
	case OutcomeIneligible:
		s.Ineligible++
		return
	case OutcomeInvalidPattern:
		s.InvalidPattern++
		return
	}

	s.Eligible++
	switch o {
	case OutcomePretended:
		s.Pretended++
	case OutcomeCopied:
		s.Succeeded++
	case OutcomeRejected:
		s.Failed++
		s.Rejected++
	case OutcomeMissingEncryptionKey:
		s.Failed++
		s.MissingEncryptionKey++
	case OutcomeCopyFailed:
		s.Failed++
		s.CopyFailed++
	}
}
