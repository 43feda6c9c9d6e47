// register.go wires shap/regression's constructor into the shap package's
// registration variable (NewRegressorFunc). This init() runs whenever any
// package imports shap/regression, breaking the import cycle between
// shap/ (interface owner) and shap/regression/ (implementation).
// Production code imports shap/regression directly for its side effect;
// test code in package shap that does not want the gonum/mat dependency can
// supply its own Regressor and skip this import.
package regression

import "github.com/kernelshap/kernelshap/shap"

func init() {
	shap.NewRegressorFunc = New
}
