/*
Copyright 2026 The Vitess Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

/*
Package command contains the commands used by collsort. It is intended only
for use in collsort's main package and entrypoint.

The root command lives in root.go, and commands attach themselves to it in an
init function. root.go also owns the locale registry and the calling thread
that every subcommand collates with; subcommands must use rootThread rather
than building their own, so that the --locale flag, the COLLSORT_LOCALE
environment variable and the config file all apply uniformly.

Each command keeps its flags in a package-level fooArgs struct declared next
to the command, and its logic in a commandFoo function assigned to RunE.
*/
package command
