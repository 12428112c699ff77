package course

// Pair is a course and one of its prerequisites.
type Pair struct {
	Course       string
	Prerequisite string
}

// SeedPairs is the sample dataset applied on creation and after every clear.
var SeedPairs = []Pair{
	{"Data Structures", "Programming Fundamentals"},
	{"Algorithms", "Data Structures"},
	{"Database Systems", "Data Structures"},
	{"Software Engineering", "Programming Fundamentals"},
	{"Computer Networks", "Operating Systems"},
	{"Operating Systems", "Data Structures"},
	{"Machine Learning", "Statistics"},
	{"Machine Learning", "Linear Algebra"},
	{"Artificial Intelligence", "Machine Learning"},
	{"Web Development", "Programming Fundamentals"},
	{"Mobile Development", "Programming Fundamentals"},
}

// seed applies the pairs without the duplicate edge check. The appended
// prerequisite node itself is indexed when the label is new.
func (t *Tree) seed(pairs []Pair) {
	for _, pair := range pairs {
		// ensure course
		courseNode := t.ensureCourse(pair.Course)

		// append prerequisite
		prereqNode := courseNode.push(pair.Prerequisite)

		// index prerequisite
		if _, ok := t.index[pair.Prerequisite]; !ok {
			t.register(pair.Prerequisite, prereqNode)
		}
	}
}
