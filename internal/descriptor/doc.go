// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package descriptor contains the platform-agnostic Data Product descriptor
// model, its YAML parsing, and the naming rules that derive catalog entity
// names from component URNs.
package descriptor
