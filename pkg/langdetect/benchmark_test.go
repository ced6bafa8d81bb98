package langdetect

import (
	"testing"
)

func BenchmarkDetectByExtension(b *testing.B) {
	code := []byte(`import { readFile } from "node:fs/promises";

export async function load(path) {
	return JSON.parse(await readFile(path, "utf8"));
}`)
	b.ResetTimer()
	for range b.N {
		Detect("loader.mjs", code)
	}
}

func BenchmarkDetectShebang(b *testing.B) {
	code := []byte(`#!/usr/bin/env node
const args = process.argv.slice(2);
console.log(args.join(" "));`)
	b.ResetTimer()
	for range b.N {
		Detect("bin/cli", code)
	}
}

func BenchmarkDetectMarkers(b *testing.B) {
	code := []byte(`interface Config {
	verbose: boolean;
	jobs: number;
}

declare const VERSION: string;`)
	b.ResetTimer()
	for range b.N {
		Detect("scripts/build", code)
	}
}

func BenchmarkDetectEmpty(b *testing.B) {
	code := []byte("")
	b.ResetTimer()
	for range b.N {
		Detect("empty", code)
	}
}
