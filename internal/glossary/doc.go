// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package glossary serves the custom URL picker used by creation templates to
// browse and validate business glossary terms stored in the catalog.
package glossary
