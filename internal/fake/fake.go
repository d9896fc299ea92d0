// Package fake fabricates plausible-looking values (names, companies,
// addresses, prose, network addresses) from small embedded word lists. Every
// function draws from the caller's *rand.Rand so generation stays
// reproducible under a fixed seed.
package fake

import (
	"fmt"
	"math/rand"
	"strings"
)

var firstNames = []string{
	"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael",
	"Linda", "David", "Elizabeth", "William", "Barbara", "Richard", "Susan",
	"Joseph", "Jessica", "Thomas", "Sarah", "Charles", "Karen", "Daniel",
	"Nancy", "Matthew", "Lisa", "Anthony", "Margaret", "Mark", "Sandra",
	"Paul", "Ashley", "Steven", "Emily", "Andrew", "Donna", "Kenneth",
	"Michelle", "Joshua", "Carol", "Kevin", "Amanda",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez",
	"Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
	"Lee", "Perez", "Thompson", "White", "Harris", "Sanchez", "Clark",
	"Ramirez", "Lewis", "Robinson", "Walker", "Young", "Allen", "King",
	"Wright", "Scott", "Torres", "Nguyen", "Hill", "Flores",
}

var companyStems = []string{
	"Meridian", "Atlas", "Vertex", "Cascade", "Pinnacle", "Horizon",
	"Summit", "Beacon", "Keystone", "Sterling", "Granite", "Harbor",
	"Crescent", "Willow", "Redwood", "Lakeside", "Northgate", "Ironwood",
	"Silverline", "Bluepeak", "Clearwater", "Fairview", "Stonebridge",
	"Oakfield", "Brightstone",
}

var companySuffixes = []string{
	"Group", "Holdings", "Partners", "Associates", "Solutions", "Systems",
	"Industries", "Consulting", "Labs", "Ventures", "Corp", "LLC",
}

var streetNames = []string{
	"Maple", "Oak", "Cedar", "Elm", "Pine", "Washington", "Lake", "Hill",
	"Park", "Main", "Church", "High", "Mill", "Walnut", "Spring", "River",
}

var streetTypes = []string{"St", "Ave", "Blvd", "Dr", "Ln", "Rd", "Ct", "Way"}

var cities = []string{
	"Springfield", "Riverton", "Fairmont", "Georgetown", "Clayton",
	"Madison", "Franklin", "Arlington", "Bristol", "Clinton", "Dayton",
	"Kingston", "Milton", "Newport", "Salem", "Ashland",
}

var states = []string{
	"AL", "AZ", "CA", "CO", "FL", "GA", "IL", "IN", "MA", "MD", "MI", "MN",
	"NC", "NJ", "NY", "OH", "OR", "PA", "TN", "TX", "VA", "WA",
}

var words = []string{
	"audit", "budget", "charter", "compliance", "contract", "dossier",
	"estimate", "forecast", "framework", "inventory", "ledger", "manifest",
	"memo", "outline", "overview", "portfolio", "proposal", "prospectus",
	"quarterly", "report", "review", "roadmap", "roster", "schedule",
	"statement", "strategy", "summary", "survey", "syllabus", "timeline",
}

func pick(r *rand.Rand, list []string) string {
	return list[r.Intn(len(list))]
}

func FirstName(r *rand.Rand) string {
	return pick(r, firstNames)
}

func LastName(r *rand.Rand) string {
	return pick(r, lastNames)
}

func Company(r *rand.Rand) string {
	return pick(r, companyStems) + " " + pick(r, companySuffixes)
}

func Address(r *rand.Rand) string {
	return fmt.Sprintf("%d %s %s, %s, %s %05d",
		r.Intn(9899)+100,
		pick(r, streetNames),
		pick(r, streetTypes),
		pick(r, cities),
		pick(r, states),
		r.Intn(89999)+10000,
	)
}

func Word(r *rand.Rand) string {
	return pick(r, words)
}

// Sentence produces 4-9 words, capitalized, no trailing period.
func Sentence(r *rand.Rand) string {
	n := r.Intn(6) + 4
	parts := make([]string, n)
	for i := range parts {
		parts[i] = pick(r, words)
	}
	s := strings.Join(parts, " ")
	return strings.ToUpper(s[:1]) + s[1:]
}

// Numerify replaces every '#' in the pattern with a random digit.
func Numerify(r *rand.Rand, pattern string) string {
	var b strings.Builder
	b.Grow(len(pattern))
	for _, c := range pattern {
		if c == '#' {
			b.WriteByte(byte('0' + r.Intn(10)))
		} else {
			b.WriteRune(c)
		}
	}
	return b.String()
}

func IPv4(r *rand.Rand) string {
	return fmt.Sprintf("%d.%d.%d.%d",
		r.Intn(254)+1, r.Intn(256), r.Intn(256), r.Intn(254)+1)
}

const passwordAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#%"

// Password returns a random 16-character secret.
func Password(r *rand.Rand) string {
	b := make([]byte, 16)
	for i := range b {
		b[i] = passwordAlphabet[r.Intn(len(passwordAlphabet))]
	}
	return string(b)
}
