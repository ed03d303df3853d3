// Azcensus - Azure subscription resource census.
// Scan. Count. Report.
package main

func main() {
	Execute()
}
