package dataset_test

import (
	"io/ioutil"
	"os"
	"path"
	"strings"
	"testing"

	"github.com/hscells/crossfold/dataset"
)

func TestFromCSV(t *testing.T) {
	r := strings.NewReader(`a,b,target
1,2,3
4,5,6
`)
	d, err := dataset.FromCSV(r, "target")
	if err != nil {
		t.Fatal(err)
	}
	if d.Len() != 2 {
		t.Fatalf("expected 2 samples, got %d", d.Len())
	}
	if d.Y[0] != 3 || d.Y[1] != 6 {
		t.Fatalf("unexpected targets %v", d.Y)
	}
	if d.X.At(1, 1) != 5 {
		t.Fatalf("unexpected feature %v", d.X.At(1, 1))
	}
	if len(d.Names) != 2 || d.Names[0] != "a" || d.Names[1] != "b" {
		t.Fatalf("unexpected column names %v", d.Names)
	}
}

func TestFromCSVMissingTarget(t *testing.T) {
	r := strings.NewReader("a,b\n1,2\n")
	if _, err := dataset.FromCSV(r, "target"); err == nil {
		t.Fatal("expected an error for a missing target column")
	}
}

func TestFromCSVNonNumeric(t *testing.T) {
	r := strings.NewReader("a,target\nx,1\n")
	if _, err := dataset.FromCSV(r, "target"); err == nil {
		t.Fatal("expected an error for non-numeric data")
	}
}

func TestManifestLoad(t *testing.T) {
	dir, err := ioutil.TempDir("", "crossfold")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	csvPath := path.Join(dir, "data.csv")
	if err := ioutil.WriteFile(csvPath, []byte("a;target\n1;2\n3;4\n"), 0664); err != nil {
		t.Fatal(err)
	}
	manifestPath := path.Join(dir, "data.properties")
	manifest := "dataset.name=demo\ndataset.path=" + csvPath + "\ndataset.target=target\ndataset.delimiter=;\n"
	if err := ioutil.WriteFile(manifestPath, []byte(manifest), 0664); err != nil {
		t.Fatal(err)
	}

	m, err := dataset.LoadManifest(manifestPath)
	if err != nil {
		t.Fatal(err)
	}
	if m.Name != "demo" || m.Delimiter != ';' {
		t.Fatalf("unexpected manifest %+v", m)
	}

	d, err := m.Load()
	if err != nil {
		t.Fatal(err)
	}
	if d.Len() != 2 || d.Y[1] != 4 {
		t.Fatalf("unexpected dataset %+v", d)
	}
}

func TestLoaderCaches(t *testing.T) {
	dir, err := ioutil.TempDir("", "crossfold")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	csvPath := path.Join(dir, "data.csv")
	if err := ioutil.WriteFile(csvPath, []byte("a,target\n1,2\n"), 0664); err != nil {
		t.Fatal(err)
	}
	manifestPath := path.Join(dir, "data.properties")
	manifest := "dataset.path=" + csvPath + "\ndataset.target=target\n"
	if err := ioutil.WriteFile(manifestPath, []byte(manifest), 0664); err != nil {
		t.Fatal(err)
	}

	l, err := dataset.NewLoader(2)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := l.Load(manifestPath); err != nil {
		t.Fatal(err)
	}

	// A cached dataset must survive the manifest disappearing.
	if err := os.Remove(manifestPath); err != nil {
		t.Fatal(err)
	}
	d, err := l.Load(manifestPath)
	if err != nil {
		t.Fatal(err)
	}
	if d.Len() != 1 {
		t.Fatalf("expected the cached dataset, got %d samples", d.Len())
	}
}

func TestSyntheticRegression(t *testing.T) {
	d := dataset.SyntheticRegression(50, 3, 0.1, 1337)
	if d.Len() != 50 {
		t.Fatalf("expected 50 samples, got %d", d.Len())
	}
	again := dataset.SyntheticRegression(50, 3, 0.1, 1337)
	for i := range d.Y {
		if d.Y[i] != again.Y[i] {
			t.Fatal("datasets with the same seed must be identical")
		}
	}
}

func TestSyntheticSeries(t *testing.T) {
	d := dataset.SyntheticSeries(30, 0, 1)
	if d.Len() != 30 {
		t.Fatalf("expected 30 samples, got %d", d.Len())
	}
	// The lag feature of sample i is the target of sample i-1.
	if d.X.At(5, 1) != d.Y[4] {
		t.Fatalf("expected lag feature %v, got %v", d.Y[4], d.X.At(5, 1))
	}
}
