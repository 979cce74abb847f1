// Package metrics は回帰の平方和分解（SST / SSE / SSR）と関連指標を提供する。
//
// 線形最小二乗法では SST = SSE + SSR が成り立ち、決定係数 R² = 1 - SSE/SST が
// 意味を持つ。非線形モデルではこの分解は一般に成り立たない。Decompose は
// その差分を明示的に返す。
package metrics

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/ssdecomp/pkg/errors"
)

// Mean は応答変数の算術平均 ȳ を計算する
func Mean(y *mat.VecDense) (float64, error) {
	n := y.Len()
	if n == 0 {
		return 0, errors.NewValueError("Mean", "empty vector")
	}

	var sum float64
	for i := 0; i < n; i++ {
		sum += y.AtVec(i)
	}
	return sum / float64(n), nil
}

// SST は全平方和 Σ(y_i - ȳ)² を計算する
func SST(yTrue *mat.VecDense) (float64, error) {
	yMean, err := Mean(yTrue)
	if err != nil {
		return 0, err
	}

	var sum float64
	for i := 0; i < yTrue.Len(); i++ {
		diff := yTrue.AtVec(i) - yMean
		sum += diff * diff
	}
	return sum, nil
}

// SSE は残差平方和 Σ(y_i - ŷ_i)² を計算する
func SSE(yTrue, yPred *mat.VecDense) (float64, error) {
	// 入力検証
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("SSE", "empty vector")
	}

	if yPred.Len() != n {
		return 0, errors.NewDimensionError("SSE", n, yPred.Len(), 0)
	}

	var sum float64
	for i := 0; i < n; i++ {
		diff := yTrue.AtVec(i) - yPred.AtVec(i)
		sum += diff * diff
	}
	return sum, nil
}

// SSR は回帰平方和 Σ(ŷ_i - ȳ)² を計算する。
// ȳ は観測値 yTrue の平均であることに注意。
func SSR(yTrue, yPred *mat.VecDense) (float64, error) {
	// 入力検証
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("SSR", "empty vector")
	}

	if yPred.Len() != n {
		return 0, errors.NewDimensionError("SSR", n, yPred.Len(), 0)
	}

	yMean, err := Mean(yTrue)
	if err != nil {
		return 0, err
	}

	var sum float64
	for i := 0; i < n; i++ {
		diff := yPred.AtVec(i) - yMean
		sum += diff * diff
	}
	return sum, nil
}

// Decomposition は平方和分解の結果を保持する
type Decomposition struct {
	YMean float64 // 観測値の平均 ȳ
	SST   float64 // 全平方和
	SSE   float64 // 残差平方和
	SSR   float64 // 回帰平方和
}

// Sum は SSE + SSR を返す
func (d *Decomposition) Sum() float64 {
	return d.SSE + d.SSR
}

// Diff は SST - (SSE + SSR) を返す。線形最小二乗フィットではゼロになる
func (d *Decomposition) Diff() float64 {
	return d.SST - d.Sum()
}

// Holds は分解の恒等式 SST = SSE + SSR が許容誤差内で成り立つかを返す
func (d *Decomposition) Holds(tol float64) bool {
	return math.Abs(d.Diff()) < tol
}

// Decompose は観測値と予測値から平方和分解を一度に計算する
func Decompose(yTrue, yPred *mat.VecDense) (*Decomposition, error) {
	// 入力検証
	n := yTrue.Len()
	if n == 0 {
		return nil, errors.NewValueError("Decompose", "empty vector")
	}

	if yPred.Len() != n {
		return nil, errors.NewDimensionError("Decompose", n, yPred.Len(), 0)
	}

	yMean, err := Mean(yTrue)
	if err != nil {
		return nil, err
	}

	d := &Decomposition{YMean: yMean}
	for i := 0; i < n; i++ {
		yTrueVal := yTrue.AtVec(i)
		yPredVal := yPred.AtVec(i)

		d.SST += (yTrueVal - yMean) * (yTrueVal - yMean)
		d.SSE += (yTrueVal - yPredVal) * (yTrueVal - yPredVal)
		d.SSR += (yPredVal - yMean) * (yPredVal - yMean)
	}
	return d, nil
}

// MSE は平均二乗誤差（Mean Squared Error）を計算する
func MSE(yTrue, yPred *mat.VecDense) (float64, error) {
	sse, err := SSE(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return sse / float64(yTrue.Len()), nil
}

// R2Score は決定係数（R²）を古典的な定義 1 - SSE/SST で計算する。
// この定義が分散の説明率として解釈できるのは SST = SSE + SSR のときだけである。
func R2Score(yTrue, yPred *mat.VecDense) (float64, error) {
	sst, err := SST(yTrue)
	if err != nil {
		return 0, err
	}

	sse, err := SSE(yTrue, yPred)
	if err != nil {
		return 0, err
	}

	// 全変動が0の場合（すべてのyTrueが同じ値）
	if sst == 0 {
		return 0, errors.Newf("R2Score: total sum of squares is zero (no variance in yTrue)")
	}

	return 1 - sse/sst, nil
}
