package normalize

import (
	"regexp"
	"strings"
)

var (
	reEduProgress    = regexp.MustCompile(`\b(?:currently|pursuing|completed?|doing|appearing|ongoing|studying|passed(?:\s+out)?|final\s+year|(?:first|second|third|fourth|1st|2nd|3rd|4th)\s+year)\b`)
	reEduInstitution = regexp.MustCompile(`\s+(?:from|at)\s+[^,;]*`)
	reEduInstitutes  = regexp.MustCompile(`\b(?:iit|nit|iiit|iim|bits|iisc|aiims|vit|srm)\b`)
	reEduPlusTwo     = regexp.MustCompile(`(?:\+\s*2|\bplus\s+two)\b`)
	reEduDots        = regexp.MustCompile(`[."']`)
	reEduBrackets    = regexp.MustCompile(`[()\[\]{}]`)
	reEduDash        = regexp.MustCompile(`\s*-\s*`)
	reEduJoiners     = regexp.MustCompile(`\s+and\s+|[&+;/|]`)
)

// educationRules is ordered from the most specific qualification to the most
// generic. Highest degrees come first so "MBBS, MD" reports MD, and every
// label passes through its own rule again unchanged.
var educationRules = Cascade{
	// doctoral and medical
	newRule("PhD (Doctor of Philosophy)", `\bph\s?d\b|\bdoctorate\b|doctor of philosophy|\bd\s?phil\b`),
	newRule("MD (Doctor of Medicine)", `\bmd\b|doctor of medicine`),
	newRule("MDS (Master of Dental Surgery)", `\bmds\b|master of dental surgery`),
	newRule("MS (Master of Surgery)", `master of surgery|\bm\s?s\b[^,]*\b(?:surgery|ortho\w*|ent|ophthalmology|obstetrics)\b`),
	newRule("MBBS (Bachelor of Medicine, Bachelor of Surgery)", `\bmbbs\b|bachelor of medicine`),
	newRule("BDS (Bachelor of Dental Surgery)", `\bbds\b|bachelor of dental surgery`),
	newRule("BAMS (Bachelor of Ayurvedic Medicine and Surgery)", `\bbams\b|ayurved`),
	newRule("BHMS (Bachelor of Homeopathic Medicine and Surgery)", `\bbhms\b|homeopath`),

	// professional certifications
	newRule("CA (Chartered Accountant)", `\bca\b|\baca\b|\bfca\b|chartered accountan`),
	newRule("CS (Company Secretary)", `company secretary|\bacs\b|\bfcs\b`),
	newRule("CMA (Cost and Management Accountant)", `\bcma\b|\bicwa\b|cost\s*,?\s*(?:and\s+)?management|cost accountan`),

	// master's
	newRule("MBA (Master of Business Administration)", `\bmba\b|\bpgdm\b|\bpgdba\b|master of business`),
	newRule("MCA (Master of Computer Applications)", `\bmca\b|master of computer application`),
	newRule("MTech (Master of Technology)", `\bm\s?tech\b|master of technology`),
	newRule("ME (Master of Engineering)", `\bm\s?e\b|master of engineering`),
	newRule("MArch (Master of Architecture)", `\bm\s?arch\b|master of architecture`),
	newRule("MPharm (Master of Pharmacy)", `\bm\s?pharm\w*|master of pharmacy`),
	newRule("MS (Master of Science)", `\bm\s?s\b`),
	newRule("MSc (Master of Science)", `\bm\s?sc\b|master of science`),
	newRule("MCom (Master of Commerce)", `\bm\s?com\b|master of commerce`),
	newRule("MEd (Master of Education)", `\bm\s?ed\b|master of education`),
	newRule("MA (Master of Arts)", `\bma\b|master of arts`),
	newRule("MSW (Master of Social Work)", `\bmsw\b|master of social work`),
	newRule("LLM (Master of Laws)", `\bllm\b|master of laws?\b`),
	newRule("MPhil (Master of Philosophy)", `\bm\s?phil\b|master of philosophy`),
	newRule("PG Diploma (Post Graduate Diploma)", `\bpg\s?d\b|\bpg diploma\b|post\s?graduate diploma`),

	// bachelor's
	newRule("BTech (Bachelor of Technology)", `\bb\s?tech\b|bachelor of technology`),
	newRule("BE (Bachelor of Engineering)", `\bb\s?e\b|bachelor of engineering`),
	newRule("BArch (Bachelor of Architecture)", `\bb\s?arch\b|bachelor of architecture`),
	newRule("BPharm (Bachelor of Pharmacy)", `\bb\s?pharm\w*|bachelor of pharmacy`),
	newRule("BCA (Bachelor of Computer Applications)", `\bbca\b|bachelor of computer application`),
	newRule("BBA (Bachelor of Business Administration)", `\bbba\b|\bbbm\b|bachelor of business`),
	newRule("BCom (Bachelor of Commerce)", `\bb\s?com\b|bachelor of commerce`),
	newRule("BSc Nursing (Bachelor of Science in Nursing)", `\bnursing\b`),
	newRule("BSc (Bachelor of Science)", `\bb\s?sc\b|bachelor of science`),
	newRule("BEd (Bachelor of Education)", `\bb\s?ed\b|bachelor of education`),
	newRule("LLB (Bachelor of Laws)", `\bllb\b|bachelor of laws?\b|\blaw\b`),
	newRule("BFA (Bachelor of Fine Arts)", `\bbfa\b|fine arts?\b`),
	newRule("BA (Bachelor of Arts)", `\bba\b|bachelor of arts`),
	newRule("BDes (Bachelor of Design)", `\bb\s?des\b|bachelor of design`),
	newRule("BHM (Bachelor of Hotel Management)", `\bbhm\b|hotel management`),

	// diplomas and school
	newRule("Diploma (Polytechnic Diploma)", `\bdiploma\b|polytechnic`),
	newRule("ITI (Industrial Training Institute)", `\biti\b`),
	newRule("12th (Higher Secondary)", `\b12th\b|\bhsc\b|\bpuc\b|\bxii\b|intermediate|higher secondary|pre university`),
	newRule("10th (Secondary School)", `\b10th\b|\bssc\b|\bsslc\b|matric\w*|secondary school`),

	newRule("Post Graduate (Master's Degree)", `post\s?graduat\w*|\bpg\b|\bmasters?\b`),

	// subject areas without a degree name
	newRule("BE (Bachelor of Engineering)", `\bengineer\w*`),
	newRule("MBBS (Bachelor of Medicine, Bachelor of Surgery)", `\bmedicine\b|\bmedical\b`),
	newRule("BCom (Bachelor of Commerce)", `\bcommerce\b|\baccount\w*`),
	newRule("BCA (Bachelor of Computer Applications)", `computer application`),
	newRule("BSc (Bachelor of Science)", `\bscience\b|\bphysics\b|\bchemistry\b|\bmath\w*|\bbiology\b|\bbotany\b|\bzoology\b|\bbiotech\w*`),
	newRule("BA (Bachelor of Arts)", `\barts\b|\bliterature\b|\benglish\b|\bhistory\b|\beconomics\b|\bpsychology\b|\bsociology\b|\bjournalism\b`),
	newRule("BBA (Bachelor of Business Administration)", `\bmanagement\b|\bbusiness\b`),

	newRule("Graduate (Bachelor's Degree)", `\bgraduat\w*|\bdegree\b|\bbachelors?\b|\bug\b`),
}

// StandardizeEducation maps a free-text qualification to one canonical
// "Degree (Full Name)" label. It returns "" for placeholders and for text no
// rule recognises.
func StandardizeEducation(raw string) string {
	if IsPlaceholder(raw) {
		return ""
	}
	s := simplifyEducation(raw)
	if s == "" {
		return ""
	}
	label, _ := educationRules.Apply(s)
	return label
}

// simplifyEducation drops progress words, institution names and punctuation
// so degree abbreviations stand on their own
func simplifyEducation(raw string) string {
	s := strings.ToLower(fold(raw))
	s = reEduProgress.ReplaceAllString(s, " ")
	s = reEduInstitution.ReplaceAllString(s, "")
	s = reEduInstitutes.ReplaceAllString(s, " ")
	s = reEduPlusTwo.ReplaceAllString(s, " 12th ")
	s = reEduDots.ReplaceAllString(s, "")
	s = reEduBrackets.ReplaceAllString(s, " ")
	s = reEduDash.ReplaceAllString(s, " ")
	s = reEduJoiners.ReplaceAllString(s, ", ")
	return cleanSeparators(s)
}
