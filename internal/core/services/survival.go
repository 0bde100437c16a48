package services

import (
	"math"

	"github.com/go-gota/gota/dataframe"

	"github.com/custodia-labs/titanic-cli/internal/core/domain"
)

// genderCodes returns the gender code per row. A cleaned frame carries
// the Gender column; otherwise Sex is mapped on the fly. Unmapped and
// missing values are NaN.
func genderCodes(df dataframe.DataFrame) ([]float64, error) {
	if hasColumn(df, domain.ColumnGender) {
		return floatColumn(df, domain.ColumnGender)
	}

	sex, present, err := stringColumn(df, domain.ColumnSex)
	if err != nil {
		return nil, err
	}
	codes := make([]float64, len(sex))
	for i, v := range sex {
		code, ok := domain.GenderCode(v)
		if !present[i] || !ok {
			codes[i] = math.NaN()
			continue
		}
		codes[i] = float64(code)
	}
	return codes, nil
}

// survivalByGender computes the mean survival per gender code.
func survivalByGender(df dataframe.DataFrame) (*domain.GroupMeans, error) {
	survived, err := survivedColumn(df)
	if err != nil {
		return nil, err
	}
	codes, err := genderCodes(df)
	if err != nil {
		return nil, err
	}

	groups := meansByKey(codes, survived)
	for i := range groups {
		switch groups[i].Key {
		case "0":
			groups[i].Label = domain.GenderLabel(domain.GenderMale)
		case "1":
			groups[i].Label = domain.GenderLabel(domain.GenderFemale)
		}
	}

	return &domain.GroupMeans{
		Title:      "Survival Rate by Gender",
		KeyLabel:   "Gender (0: Male, 1: Female)",
		ValueLabel: "Survival Probability",
		Groups:     groups,
	}, nil
}
