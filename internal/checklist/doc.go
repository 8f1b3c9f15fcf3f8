// Package checklist holds the static launch readiness catalog and its
// scoring rules. Every item weighs the same regardless of real-world
// importance; the priority fix list is where severity ordering lives.
package checklist
