package normalize

import "sort"

// DefaultProfessions is used when the professions lookup table is empty
var DefaultProfessions = []string{
	"Software Professional",
	"Engineer",
	"Civil Engineer",
	"Mechanical Engineer",
	"Electrical Engineer",
	"Doctor",
	"Dentist",
	"Nurse",
	"Pharmacist",
	"Teacher",
	"Professor",
	"Lawyer",
	"Chartered Accountant",
	"Company Secretary",
	"Accountant",
	"Banker",
	"Manager",
	"Clerk",
	"Defence Services",
	"Government Employee",
	"Police",
	"Farmer",
	"Businessperson",
	"Entrepreneur",
	"Driver",
	"Tailor",
	"Chef",
	"Architect",
	"Designer",
	"Scientist",
	"Journalist",
	"Consultant",
	"Real Estate",
	"Social Worker",
	"Artist",
	"Private Employee",
}

// designationProfessions infers a profession for a known designation
var designationProfessions = map[string]string{
	"Software Engineer":        "Software Professional",
	"Senior Software Engineer": "Software Professional",
	"Software Developer":       "Software Professional",
	"Full Stack Developer":     "Software Professional",
	"DevOps Engineer":          "Software Professional",
	"QA Engineer":              "Software Professional",
	"Test Engineer":            "Software Professional",
	"Technical Lead":           "Software Professional",
	"Team Lead":                "Software Professional",
	"Solution Architect":       "Software Professional",
	"Data Scientist":           "Software Professional",
	"Data Analyst":             "Software Professional",
	"Data Engineer":            "Software Professional",
	"Business Analyst":         "Private Employee",
	"Project Manager":          "Manager",
	"Product Manager":          "Manager",
	"Program Manager":          "Manager",
	"Manager":                  "Manager",
	"Senior Manager":           "Manager",
	"Assistant Manager":        "Manager",
	"General Manager":          "Manager",
	"HR Manager":               "Manager",
	"Marketing Manager":        "Manager",
	"Branch Manager":           "Banker",
	"Bank Officer":             "Banker",
	"Probationary Officer":     "Banker",
	"Cashier":                  "Banker",
	"Director":                 "Businessperson",
	"Managing Director":        "Businessperson",
	"CEO":                      "Businessperson",
	"CTO":                      "Software Professional",
	"Founder":                  "Entrepreneur",
	"Co-Founder":               "Entrepreneur",
	"Partner":                  "Businessperson",
	"Proprietor":               "Businessperson",
	"Vice President":           "Manager",
	"Associate":                "Private Employee",
	"Executive":                "Private Employee",
	"Sales Executive":          "Private Employee",
	"HR Executive":             "Private Employee",
	"Consultant":               "Consultant",
	"Senior Consultant":        "Consultant",
	"Site Engineer":            "Civil Engineer",
	"Civil Engineer":           "Civil Engineer",
	"Mechanical Engineer":      "Mechanical Engineer",
	"Electrical Engineer":      "Electrical Engineer",
	"Assistant Engineer":       "Government Employee",
	"Junior Engineer":          "Engineer",
	"Executive Engineer":       "Government Employee",
	"Section Officer":          "Government Employee",
	"Officer":                  "Government Employee",
	"Medical Officer":          "Doctor",
	"Resident Doctor":          "Doctor",
	"Consultant Physician":     "Doctor",
	"Surgeon":                  "Doctor",
	"Staff Nurse":              "Nurse",
	"Head Nurse":               "Nurse",
	"Professor":                "Professor",
	"Assistant Professor":      "Professor",
	"Associate Professor":      "Professor",
	"Lecturer":                 "Teacher",
	"Principal":                "Teacher",
	"Research Scientist":       "Scientist",
	"Scientist":                "Scientist",
	"Architect":                "Architect",
	"Advocate":                 "Lawyer",
	"Auditor":                  "Accountant",
	"Accountant":               "Accountant",
	"Clerk":                    "Clerk",
	"Graphic Designer":         "Designer",
	"UI/UX Designer":           "Designer",
	"Inspector":                "Police",
	"Sub Inspector":            "Police",
}

// DefaultDesignations is used when the designations lookup table is empty
var DefaultDesignations = func() []string {
	out := make([]string, 0, len(designationProfessions))
	for d := range designationProfessions {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}()
