// Package academic scores the structured academic fields of an application:
// GPA, calculus completion, and upper-level mathematics coursework.
package academic

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/honorsoc/applicant-ranker/internal/curve"
	"github.com/honorsoc/applicant-ranker/internal/types"
)

// GPA curve parameters. Two logistic ramps, one centered where applications
// become competitive and one where they become excellent, blended and scaled
// so the curve reaches the 10 cap at 3.9.
const (
	gpaDomainMax        = 4.33
	gpaCompetitiveMid   = 3.55
	gpaCompetitiveSlope = 12.5
	gpaExcellenceMid    = 3.85
	gpaExcellenceSlope  = 16.0
	gpaCompetitiveBlend = 0.55
	gpaExcellenceBlend  = 0.45
	gpaScale            = 11.8
)

// Course scoring parameters.
const (
	maxCourses      = 6
	courseSatRate   = 0.22
	legacyCountRate = 0.35
)

// Rigor bonuses for the legacy count-based fallback, in points added on top
// of the count curve.
const (
	rigorProofBonus = 1.5
	rigorUpperBonus = 2.0
	rigorGradBonus  = 3.0
)

// Point values per course, by catalog tier and number band.
const (
	pointsIntro          = 1.0
	pointsUpperUndergrad = 2.5
	pointsAdvanced       = 4.0
	pointsGraduate       = 5.0
)

// courseCodePattern matches catalog codes like "MATH UN3007": department,
// tier prefix, 4-digit number.
var courseCodePattern = regexp.MustCompile(`^([A-Z]{2,4}) (UN|GU|GR)([0-9]{4})$`)

// mathDepartments are the departments whose courses earn upper-level credit.
var mathDepartments = map[string]bool{
	"MATH": true,
	"APMA": true,
	"STAT": true,
}

// ScoreGPA maps a GPA onto [0,10]. The input is clamped to the
// institutional range before scoring. Monotonic non-decreasing; exactly 10
// for every GPA of 3.9 and above.
func ScoreGPA(gpa float64) float64 {
	g := curve.Clamp(gpa, 0, gpaDomainMax)

	competitive := curve.Logistic((g - gpaCompetitiveMid) * gpaCompetitiveSlope)
	excellence := curve.Logistic((g - gpaExcellenceMid) * gpaExcellenceSlope)
	blended := gpaCompetitiveBlend*competitive + gpaExcellenceBlend*excellence

	return curve.Clamp(gpaScale*blended, 0, 10)
}

// ScoreCalc maps the calculus-completion answer onto [0,10]. The unknown
// branch takes the lowest-credit mapping rather than erroring.
func ScoreCalc(answer types.CalcAnswer) float64 {
	switch answer {
	case types.CalcYes:
		return 10.0
	case types.CalcNo:
		return 0.0
	default:
		// Unrecognized answers earn no credit
		return 0.0
	}
}

// ScoreUpperFromCourses scores a list of upper-level course codes. Each
// parseable code in a mathematics department earns points by catalog tier;
// the point total saturates toward 10. Codes that fail to parse contribute
// 0 points without failing the whole score.
func ScoreUpperFromCourses(courses []string) float64 {
	if len(courses) > maxCourses {
		courses = courses[:maxCourses]
	}

	total := 0.0
	for _, code := range courses {
		total += coursePoints(code)
	}

	return 10.0 * curve.SatExp(total, courseSatRate)
}

// ScoreUpperLegacy scores the count-plus-rigor fallback used when an
// applicant reports a course count instead of a course list. The count
// saturates toward 10 and the rigor tier adds a fixed bonus.
func ScoreUpperLegacy(count int, rigor types.RigorTier) float64 {
	if count < 0 {
		count = 0
	}

	base := 10.0 * curve.SatExp(legacyCountRate*float64(count), 1.0)

	bonus := 0.0
	switch rigor {
	case types.RigorProof:
		bonus = rigorProofBonus
	case types.RigorUpper:
		bonus = rigorUpperBonus
	case types.RigorGrad:
		bonus = rigorGradBonus
	case types.RigorStandard:
		bonus = 0.0
	}

	return curve.Clamp(base+bonus, 0, 10)
}

// coursePoints converts a single catalog code into points. Unparseable
// codes and courses outside the mathematics departments are worth 0.
func coursePoints(code string) float64 {
	normalized := strings.Join(strings.Fields(strings.ToUpper(strings.TrimSpace(code))), " ")

	m := courseCodePattern.FindStringSubmatch(normalized)
	if m == nil {
		return 0.0
	}

	dept, tier := m[1], m[2]
	if !mathDepartments[dept] {
		return 0.0
	}

	number, err := strconv.Atoi(m[3])
	if err != nil {
		return 0.0
	}

	switch tier {
	case "UN":
		if number >= 3000 {
			return pointsUpperUndergrad
		}
		return pointsIntro
	case "GU":
		if number >= 4000 {
			return pointsAdvanced
		}
		return pointsUpperUndergrad
	case "GR":
		if number >= 6000 {
			return pointsGraduate
		}
		return pointsAdvanced
	default:
		return 0.0
	}
}
