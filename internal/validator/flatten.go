// Copyright 2026 The Copybook Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package validator

import "github.com/fixedrec/copybook/internal/value"

// flatten reduces a decoded Group/Sequence tree to a dotted-path-to-leaf
// map, omitting groups and sequences themselves — only scalar leaves are
// addressable for comparison.
func flatten(v *value.Value) map[string]*value.Value {
	return value.Flatten(v)
}
