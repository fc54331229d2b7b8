package main

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"go/format"
	"math/big"
	"os"
	"path/filepath"
	"sort"
	"text/template"
)

// vector holds a pair of operands and the expected results of all
// operations, computed with math/big.
type vector struct {
	Name     string
	A        string
	B        string
	Sum      string
	Diff     string
	Prod     string
	Zeros    bool // both operands are zero, addition must fail
	Overflow bool // the sum does not fit into the longer operand
}

func main() {
	// Open the input file and read its contents
	data, err := readCsvFile(filepath.Join("scripts", "vectors", "vectors.csv"))
	if err != nil {
		panic(fmt.Errorf("error reading CSV file: %v", err))
	}

	// Convert the CSV records to a list of vectors
	vecs, err := convertDataToVectors(data)
	if err != nil {
		panic(fmt.Errorf("error converting CSV records: %v", err))
	}

	// Generate Go code from the vectors using a template
	code, err := generateGoCode(filepath.Join("scripts", "vectors", "vectors_data.tmpl"), vecs)
	if err != nil {
		panic(fmt.Errorf("error generating Go code: %v", err))
	}

	// Write the generated Go code to a file
	err = writeToFile("vectors_data_test.go", code)
	if err != nil {
		panic(fmt.Errorf("error writing to file: %v", err))
	}
}

func readCsvFile(filename string) ([][]string, error) {
	// Open the CSV file
	in, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()

	// Read the CSV records
	reader := csv.NewReader(in)
	_, err = reader.Read() // header
	if err != nil {
		return nil, err
	}
	recs, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	return recs, nil
}

func convertDataToVectors(data [][]string) ([]vector, error) {
	// Sort the CSV records by name
	sort.Slice(data, func(i, j int) bool {
		return data[i][0] < data[j][0]
	})

	// Convert the CSV records to vectors
	vecs := []vector{}
	for _, rec := range data {
		a, ok := new(big.Int).SetString(rec[1], 10)
		if !ok || a.Sign() < 0 {
			return nil, fmt.Errorf("%v: invalid operand %q", rec[0], rec[1])
		}
		b, ok := new(big.Int).SetString(rec[2], 10)
		if !ok || b.Sign() < 0 {
			return nil, fmt.Errorf("%v: invalid operand %q", rec[0], rec[2])
		}
		vec := vector{
			Name:  rec[0],
			A:     rec[1],
			B:     rec[2],
			Sum:   new(big.Int).Add(a, b).String(),
			Diff:  new(big.Int).Sub(a, b).String(),
			Prod:  new(big.Int).Mul(a, b).String(),
			Zeros: a.Sign() == 0 && b.Sign() == 0,
		}
		vec.Overflow = !vec.Zeros && len(vec.Sum) > max(len(vec.A), len(vec.B))
		vecs = append(vecs, vec)
	}
	return vecs, nil
}

func generateGoCode(filename string, vecs []vector) ([]byte, error) {
	// Create a new template object from the template file
	tmpl, err := template.New(filepath.Base(filename)).ParseFiles(filename)
	if err != nil {
		return nil, err
	}

	// Execute the template
	var output bytes.Buffer
	err = tmpl.Execute(&output, vecs)
	if err != nil {
		return nil, err
	}

	// Format the output as Go code
	formatted, err := format.Source(output.Bytes())
	if err != nil {
		return nil, err
	}
	return formatted, nil
}

func writeToFile(filename string, content []byte) error {
	// Write the content to a file
	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()
	writer := bufio.NewWriter(out)
	_, err = writer.Write(content)
	if err != nil {
		return err
	}
	err = writer.Flush()
	if err != nil {
		return err
	}
	return nil
}
