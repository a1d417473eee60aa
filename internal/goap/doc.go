// Package goap implements a goal-oriented action planning engine: a
// predicate-based world model, a backward-chaining planner, and an
// agent state machine that perceives, plans, and executes against it.
//
// The engine is a library with no network surface and no persistence;
// a host owns the tick loop and calls Agent.Update once per frame.
package goap
