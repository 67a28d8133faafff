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

package main

import (
	"fmt"
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

// usageMarkdown is shared by the usage command and the F1 pane of the shell.
func usageMarkdown() string {
	return fmt.Sprintf(`

 **avlviz %s**

Watch a self-balancing AVL tree of integer keys rotate as you insert, delete and search.

Built with Go %s

# 1. Features
* Height-balanced tree: every node keeps |height(left) - height(right)| <= 1
* Insert, delete and search from an interactive shell or a classic dashboard
* Balance factors, height and revision shown live
* Load keys from files and replay command scripts

# 2. Insertion policy
* **literal** (default): smaller keys go left, equal keys descend right, greater keys are discarded
* **ordered**: smaller keys go left, greater keys go right, equal keys are discarded

# 3. Shell keys
* **tab** cycles between the key field and the Insert, Delete and Search buttons
* **enter** inserts from the key field or activates the focused button
* **ctrl+n** insert, **ctrl+d** delete, **ctrl+f** search
* **ctrl+b** toggles balance factors, **ctrl+y** copies the tree as text
* **f1** toggles this help, **esc** quits

# 4. Script commands
* insert|add|i <key>...
* delete|del|rm|d <key>...
* search|find|s <key>...
* keys, print [--balance], check, stats, clear

# Please be aware
* Copy to clipboard feature on Linux or Unix requires 'xclip' or 'xsel' command to be installed

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
}

func getHelpMessage() string {
	result := markdown.Render(usageMarkdown(), 80, 3)
	return string(result)
}
