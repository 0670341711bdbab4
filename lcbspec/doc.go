// Package lcbspec defines the fixed reference data of the Local Celestial
// Bodies database and the rules used to derive values the source datasets
// do not carry.
//
// [Planets] and [OrbitClasses] are inserted in declaration order, so the
// surrogate key of an entry is one plus its index. [PlanetKey] and
// [OrbitClassKey] compute those keys from a name without querying the
// database.
//
// Randomly drawn attributes take an explicit *rand.Rand so that a seeded
// source reproduces a snapshot exactly.
package lcbspec
