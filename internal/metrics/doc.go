// Package metrics implements the scoring functions objectives and pipelines are
// evaluated with: classification scores (precision, F1, MCC), ranking scores
// (ROC AUC), probabilistic loss (log loss), regression scores (R2) and the
// descriptive statistics data checks and imputers rely on.
//
// Truth and prediction vectors are plain float64 slices; class labels are encoded
// as floats. Probability inputs are gonum matrices with one column per class in
// ascending label order.
package metrics
