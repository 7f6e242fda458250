package types

// Customization carries wizard-collected free-form fields (texts, upload
// references, dates). It never affects pricing.
type Customization map[string]any
