// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package bdd defines a concrete type for Binary Decision Diagrams (BDD), a data
structure used to efficiently represent Boolean functions over a fixed set of
variables or, equivalently, sets of Boolean vectors with a fixed size.

This package is a reduction of github.com/dalzilio/rudd, stripped down to the
single hashmap-based node table (no BuDDy-style array backend, no build
tags) and extended with an explicit variable-scope parameter on Satcount and
Allsat. The safenet symbolic reachability engine (see package symbolic)
shares one BDD instance between a "current" and a "next" copy of every place
variable, so model counts and satisfying-assignment enumeration need to be
restricted to a prefix of the declared variables rather than assuming the
whole declared Varnum is the relevant scope.

Each BDD has a fixed number of variables, Varnum, declared when it is
initialized (using the method New) and each variable is represented by an
(integer) index in the interval [0..Varnum), called a level. Most operations
over a BDD return a Node: a reference to a vertex in the diagram. We use a
pointer to int to represent a Node, with the convention that 1 (respectively
0) is the address of the constant function True (respectively False); nil
denotes an error.

The node table is a process-wide resource for the lifetime of a single BDD
value: every Node ever returned by that value remains valid until the value
is garbage collected. Distinct analyses that should not share a table simply
create distinct BDD values (see Engine in package symbolic).
*/
package bdd
