package preprocessing

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/go-gota/gota/series"

	"github.com/YuminosukeSato/metafeat/core/model"
	"github.com/YuminosukeSato/metafeat/pkg/errors"
)

// LabelEncoder はscikit-learn互換のラベルエンコーダ
// カテゴリ値を辞書順に基づく整数コードに変換する
type LabelEncoder struct {
	model.BaseEstimator

	// ClassIndex は各クラスから整数コードへのマッピング
	ClassIndex map[string]int

	// classes は辞書順にソートされたクラス一覧
	classes []string
}

// コンパイル時のインターフェース実装チェック
var _ model.SeriesTransformer = (*LabelEncoder)(nil)

// NewLabelEncoder は新しいLabelEncoderを作成する
//
// 使用例:
//
//	le := preprocessing.NewLabelEncoder()
//	encoded, err := le.FitTransform(s)
func NewLabelEncoder() *LabelEncoder {
	return &LabelEncoder{}
}

// Fit はカラムの欠損値を除く一意な値からクラス一覧を学習する
// コードはクラスの辞書順に基づいて決定的に割り当てられる
func (le *LabelEncoder) Fit(s series.Series) error {
	if s.Err != nil {
		return errors.Wrap(s.Err, "LabelEncoder.Fit")
	}
	if s.Len() == 0 {
		return errors.Wrap(errors.ErrEmptyData, "LabelEncoder.Fit")
	}

	le.classes = distinctSorted(s)
	le.ClassIndex = make(map[string]int, len(le.classes))
	for i, class := range le.classes {
		le.ClassIndex[class] = i
	}

	le.SetFitted()
	return nil
}

// Transform はカラムの値を整数コードに変換する
// 欠損値は欠損値のまま維持され、未知の値はエラーになる
func (le *LabelEncoder) Transform(s series.Series) (series.Series, error) {
	if !le.IsFitted() {
		return series.Series{}, errors.NewNotFittedError("LabelEncoder", "Transform")
	}
	if s.Err != nil {
		return series.Series{}, errors.Wrap(s.Err, "LabelEncoder.Transform")
	}

	records := s.Records()
	codes := make([]string, s.Len())
	for i := 0; i < s.Len(); i++ {
		if s.Elem(i).IsNA() {
			codes[i] = "NaN"
			continue
		}
		code, ok := le.ClassIndex[records[i]]
		if !ok {
			return series.Series{}, errors.NewValueError("LabelEncoder.Transform",
				fmt.Sprintf("unseen value '%s' in column '%s'", records[i], s.Name))
		}
		codes[i] = strconv.Itoa(code)
	}

	return series.New(codes, series.Int, s.Name), nil
}

// FitTransform はFitとTransformを同時に実行する
func (le *LabelEncoder) FitTransform(s series.Series) (series.Series, error) {
	if err := le.Fit(s); err != nil {
		return series.Series{}, err
	}
	return le.Transform(s)
}

// Classes は学習済みのクラス一覧を辞書順で返す
func (le *LabelEncoder) Classes() []string {
	out := make([]string, len(le.classes))
	copy(out, le.classes)
	return out
}

// String はエンコーダの文字列表現を返す
func (le *LabelEncoder) String() string {
	if !le.IsFitted() {
		return "LabelEncoder()"
	}
	return fmt.Sprintf("LabelEncoder(n_classes=%d)", len(le.classes))
}

// OneHotEncoder はscikit-learn互換のワンホット（ダミー変数）エンコーダ
// カテゴリカラムをクラスごとの二値指示カラムに展開する
type OneHotEncoder struct {
	model.BaseEstimator

	// Column は学習元のカラム名
	Column string

	// classes は辞書順にソートされたクラス一覧
	classes []string
}

// NewOneHotEncoder は新しいOneHotEncoderを作成する
//
// 使用例:
//
//	ohe := preprocessing.NewOneHotEncoder()
//	err := ohe.Fit(s)
//	indicators, err := ohe.Transform(s)
func NewOneHotEncoder() *OneHotEncoder {
	return &OneHotEncoder{}
}

// Fit はカラムの欠損値を除く一意な値からクラス一覧を学習する
func (ohe *OneHotEncoder) Fit(s series.Series) error {
	if s.Err != nil {
		return errors.Wrap(s.Err, "OneHotEncoder.Fit")
	}
	if s.Len() == 0 {
		return errors.Wrap(errors.ErrEmptyData, "OneHotEncoder.Fit")
	}

	ohe.Column = s.Name
	ohe.classes = distinctSorted(s)

	ohe.SetFitted()
	return nil
}

// Transform はカラムをクラスごとの指示カラムに展開する
// 各指示カラムは「元のカラム名_クラス値」と命名される
// 欠損値の行は全ての指示カラムで0になる
func (ohe *OneHotEncoder) Transform(s series.Series) ([]series.Series, error) {
	if !ohe.IsFitted() {
		return nil, errors.NewNotFittedError("OneHotEncoder", "Transform")
	}
	if s.Err != nil {
		return nil, errors.Wrap(s.Err, "OneHotEncoder.Transform")
	}

	records := s.Records()
	indicators := make([]series.Series, 0, len(ohe.classes))
	for _, class := range ohe.classes {
		values := make([]int, s.Len())
		for i := 0; i < s.Len(); i++ {
			if !s.Elem(i).IsNA() && records[i] == class {
				values[i] = 1
			}
		}
		name := fmt.Sprintf("%s_%s", ohe.Column, class)
		indicators = append(indicators, series.New(values, series.Int, name))
	}

	return indicators, nil
}

// FitTransform はFitとTransformを同時に実行する
func (ohe *OneHotEncoder) FitTransform(s series.Series) ([]series.Series, error) {
	if err := ohe.Fit(s); err != nil {
		return nil, err
	}
	return ohe.Transform(s)
}

// FeatureNames は展開後の指示カラム名の一覧を返す
func (ohe *OneHotEncoder) FeatureNames() []string {
	names := make([]string, len(ohe.classes))
	for i, class := range ohe.classes {
		names[i] = fmt.Sprintf("%s_%s", ohe.Column, class)
	}
	return names
}

// String はエンコーダの文字列表現を返す
func (ohe *OneHotEncoder) String() string {
	if !ohe.IsFitted() {
		return "OneHotEncoder()"
	}
	return fmt.Sprintf("OneHotEncoder(column=%s, n_classes=%d)", ohe.Column, len(ohe.classes))
}

// distinctSorted はカラムの欠損値を除く一意な値を辞書順で返す
func distinctSorted(s series.Series) []string {
	seen := make(map[string]struct{})
	records := s.Records()
	var out []string
	for i := 0; i < s.Len(); i++ {
		if s.Elem(i).IsNA() {
			continue
		}
		if _, ok := seen[records[i]]; ok {
			continue
		}
		seen[records[i]] = struct{}{}
		out = append(out, records[i])
	}
	sort.Strings(out)
	return out
}
