package model

// EstimatorState はモデルの学習状態を表す
type EstimatorState int

const (
	// NotFitted はモデルが未学習の状態
	NotFitted EstimatorState = iota
	// Fitted はモデルが学習済みの状態
	Fitted
)

// BaseEstimator は全てのモデルの基底となる構造体。
// 学習状態に加えて、学習時のデータ形状を保持し、Predict時の検証に使う。
type BaseEstimator struct {
	state     EstimatorState
	nSamples  int
	nFeatures int
}

// IsFitted はモデルが学習済みかどうかを返す
func (e *BaseEstimator) IsFitted() bool {
	return e.state == Fitted
}

// SetFitted はモデルを学習済み状態に設定し、学習データの形状を記録する
func (e *BaseEstimator) SetFitted(nSamples, nFeatures int) {
	e.state = Fitted
	e.nSamples = nSamples
	e.nFeatures = nFeatures
}

// NSamples は学習に使用したサンプル数を返す
func (e *BaseEstimator) NSamples() int {
	return e.nSamples
}

// NFeatures は学習に使用した特徴量の数を返す
func (e *BaseEstimator) NFeatures() int {
	return e.nFeatures
}

// Reset はモデルを初期状態にリセットする
func (e *BaseEstimator) Reset() {
	e.state = NotFitted
	e.nSamples = 0
	e.nFeatures = 0
}
