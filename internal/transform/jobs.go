package transform

import (
	"github.com/profile-normalizer/internal/normalize"
	"github.com/profile-normalizer/internal/store"
	"github.com/profile-normalizer/internal/vocab"
)

// Job names
const (
	JobAddress          = "address"
	JobEducation        = "education"
	JobIncome           = "income"
	JobParentOccupation = "parent-occupation"
	JobProfession       = "profession"
	JobPhone            = "phone"
	JobReference        = "reference"
	JobSiblings         = "siblings"
)

func text(names ...string) []store.Column {
	cols := make([]store.Column, len(names))
	for i, n := range names {
		cols[i] = store.Column{Name: n}
	}
	return cols
}

// undetermined reports a warning when a non-placeholder answer produced nothing
func undetermined(column, raw, result, reason string) []Warning {
	if result != "" || normalize.IsPlaceholder(raw) {
		return nil
	}
	return []Warning{{Column: column, Raw: raw, Reason: reason}}
}

// Jobs builds the registry of all normalizer jobs. Each job owns a disjoint set of columns.
func Jobs(v vocab.Set) *Registry {
	return NewRegistry(
		addressJob(),
		educationJob(),
		incomeJob(),
		parentOccupationJob(v),
		professionJob(v),
		phoneJob(),
		referenceJob(),
		siblingsJob(),
	)
}

func addressJob() Job {
	const in = "residing_address_raw"
	return Job{
		Name:  JobAddress,
		Reads: []string{in},
		Writes: text("residing_address", "address_house_no", "address_street", "address_area",
			"address_city", "address_state", "address_country", "address_pin"),
		Transform: func(raw map[string]string) ([]any, []Warning) {
			a := normalize.ParseAddress(raw[in])
			return []any{a.Formatted, a.HouseNo, a.Street, a.Area, a.City, a.State, a.Country, a.Pin},
				undetermined(in, raw[in], a.Formatted, "address withheld or unparseable")
		},
	}
}

func educationJob() Job {
	const in = "education_raw"
	return Job{
		Name:   JobEducation,
		Reads:  []string{in},
		Writes: text("education"),
		Transform: func(raw map[string]string) ([]any, []Warning) {
			e := normalize.StandardizeEducation(raw[in])
			return []any{e}, undetermined(in, raw[in], e, "no education level recognised")
		},
	}
}

func incomeJob() Job {
	const in = "income_raw"
	return Job{
		Name:   JobIncome,
		Reads:  []string{in},
		Writes: []store.Column{{Name: "income_lakhs", Type: "numeric"}, {Name: "income_range"}},
		Transform: func(raw map[string]string) ([]any, []Warning) {
			var lakhs any
			if v, ok := normalize.NormalizeIncomeToLakhsINR(raw[in]); ok {
				lakhs = v
			}
			label := normalize.NormalizeIncome(raw[in])

			var warnings []Warning
			if label == normalize.IncomeUndisclosed && !normalize.IsPlaceholder(raw[in]) {
				warnings = append(warnings, Warning{Column: in, Raw: raw[in], Reason: "no income amount recognised"})
			}
			return []any{lakhs, label}, warnings
		},
	}
}

func parentOccupationJob(v vocab.Set) Job {
	const father, mother = "father_occupation_raw", "mother_occupation_raw"
	return Job{
		Name:   JobParentOccupation,
		Reads:  []string{father, mother},
		Writes: text("father_occupation", "mother_occupation"),
		Transform: func(raw map[string]string) ([]any, []Warning) {
			f := normalize.NormalizeOccupation(raw[father], v.Professions)
			m := normalize.NormalizeOccupation(raw[mother], v.Professions)
			warnings := undetermined(father, raw[father], f, "occupation too short to classify")
			warnings = append(warnings, undetermined(mother, raw[mother], m, "occupation too short to classify")...)
			return []any{f, m}, warnings
		},
	}
}

func professionJob(v vocab.Set) Job {
	const in = "profession_raw"
	return Job{
		Name:   JobProfession,
		Reads:  []string{in},
		Writes: text("profession", "designation"),
		Transform: func(raw map[string]string) ([]any, []Warning) {
			pd := normalize.NormalizeProfessionDesignation(raw[in], v.Designations, v.Professions)
			return []any{pd.Profession, pd.Designation}, undetermined(in, raw[in], pd.Profession, "no profession recognised")
		},
	}
}

func phoneJob() Job {
	const in = "phone_raw"
	return Job{
		Name:   JobPhone,
		Reads:  []string{in},
		Writes: text("phone_primary", "phone_secondary"),
		Transform: func(raw map[string]string) ([]any, []Warning) {
			numbers := normalize.ExtractPhoneNumbers(raw[in])
			primary, secondary := normalize.PrimaryAndSecondary(numbers)

			warnings := undetermined(in, raw[in], primary, "no phone number found")
			if len(numbers) > 2 {
				warnings = append(warnings, Warning{Column: in, Raw: raw[in], Reason: "more than two phone numbers, extra dropped"})
			}
			return []any{primary, secondary}, warnings
		},
	}
}

func referenceJob() Job {
	const first, second = "reference_1_raw", "reference_2_raw"
	return Job{
		Name:   JobReference,
		Reads:  []string{first, second},
		Writes: text("reference_1_name", "reference_1_phone", "reference_2_name", "reference_2_phone"),
		Transform: func(raw map[string]string) ([]any, []Warning) {
			r1 := normalize.ParseReference(raw[first])
			r2 := normalize.ParseReference(raw[second])
			warnings := undetermined(first, raw[first], r1.Name+r1.Phone, "reference has neither name nor phone")
			warnings = append(warnings, undetermined(second, raw[second], r2.Name+r2.Phone, "reference has neither name nor phone")...)
			return []any{r1.Name, r1.Phone, r2.Name, r2.Phone}, warnings
		},
	}
}

func siblingsJob() Job {
	const in = "siblings_raw"
	return Job{
		Name:   JobSiblings,
		Reads:  []string{in},
		Writes: text("sisters", "brothers"),
		Transform: func(raw map[string]string) ([]any, []Warning) {
			s := normalize.ParseSiblingDetails(raw[in])
			return []any{s.Sisters, s.Brothers}, undetermined(in, raw[in], s.Sisters, "sibling details undetermined")
		},
	}
}
