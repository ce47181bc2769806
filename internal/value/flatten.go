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

package value

import "fmt"

// Flatten reduces a Group/Sequence tree to a dotted-path-to-leaf map,
// omitting groups and sequences themselves — only scalar leaves are
// addressable. OCCURS elements append "[i]" to their parent's path.
func Flatten(v *Value) map[string]*Value {
	out := make(map[string]*Value)
	flattenInto(v, "", out)
	return out
}

func flattenInto(v *Value, path string, out map[string]*Value) {
	if v == nil {
		return
	}
	switch v.Kind {
	case Group:
		for _, f := range v.GroupFields {
			child := f.Name
			if path != "" {
				child = path + "." + f.Name
			}
			flattenInto(f.Value, child, out)
		}
	case Sequence:
		for i, item := range v.Items {
			flattenInto(item, fmt.Sprintf("%s[%d]", path, i), out)
		}
	default:
		out[path] = v
	}
}
