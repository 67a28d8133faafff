// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package avl

import (
	"fmt"
	"strings"
)

// InsertPolicy decides where a key goes relative to an existing node.
type InsertPolicy int

const (
	// PolicyLiteral discards keys greater than the visited node and sends
	// equal keys right, so repeated keys are stored.
	PolicyLiteral InsertPolicy = iota
	// PolicyOrdered discards equal keys and sends greater keys right.
	PolicyOrdered
)

// route is the outcome of comparing an inserted key with a node key.
type route int

const (
	routeLeft route = iota
	routeRight
	routeDiscard
)

func (p InsertPolicy) route(key, nodeKey int) route {
	switch {
	case key < nodeKey:
		return routeLeft
	case key > nodeKey:
		if p == PolicyOrdered {
			return routeRight
		}
		return routeDiscard
	default:
		if p == PolicyOrdered {
			return routeDiscard
		}
		return routeRight
	}
}

func (p InsertPolicy) String() string {
	switch p {
	case PolicyLiteral:
		return "literal"
	case PolicyOrdered:
		return "ordered"
	}
	return fmt.Sprintf("InsertPolicy(%d)", int(p))
}

// ParseInsertPolicy accepts "literal" or "ordered" in any case. An empty
// string selects PolicyLiteral.
func ParseInsertPolicy(s string) (InsertPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "literal":
		return PolicyLiteral, nil
	case "ordered", "strict":
		return PolicyOrdered, nil
	}
	return PolicyLiteral, fmt.Errorf("unknown insert policy %q (want literal or ordered)", s)
}
