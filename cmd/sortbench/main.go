// Copyright 2025 go-sortbench Authors
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

// Command sortbench times sequential and parallel bubble, selection and
// insertion sort over reproducible inputs.
//
// Usage:
//
//	sortbench                                   # 1,000 / 10,000 / 100,000 elements
//	sortbench --sizes 2000,4000 --threads 4 --format table
//	sortbench --format gobench > run.txt && sortbench speedup run.txt
//	sortbench variants
//
// Every flag can also be set in sortbench.yaml or through SORTBENCH_*
// environment variables (SORTBENCH_THREADS=8, SORTBENCH_LOG_LEVEL=debug).
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
