package h5out

import (
	"fmt"

	hdf5 "github.com/jmbenlloch/go-hdf5"
)

// createTable creates an empty one-dimensional dataset of row's compound
// type with an unlimited extent.
func createTable(group *hdf5.Group, name string, row any, level int) (*hdf5.Dataset, error) {
	unlimited := -1 // H5S_UNLIMITED
	space, err := hdf5.CreateSimpleDataspace([]uint{0}, []uint{uint(unlimited)})
	if err != nil {
		return nil, fmt.Errorf("h5out: %s dataspace: %w", name, err)
	}
	defer space.Close()

	plist, err := hdf5.NewPropList(hdf5.P_DATASET_CREATE)
	if err != nil {
		return nil, fmt.Errorf("h5out: %s property list: %w", name, err)
	}
	defer plist.Close()
	if err := plist.SetChunk([]uint{ChunkRows}); err != nil {
		return nil, fmt.Errorf("h5out: %s chunk: %w", name, err)
	}
	if err := plist.SetDeflate(level); err != nil {
		return nil, fmt.Errorf("h5out: %s deflate: %w", name, err)
	}

	dtype, err := hdf5.NewDatatypeFromValue(row)
	if err != nil {
		return nil, fmt.Errorf("h5out: %s datatype: %w", name, err)
	}
	defer dtype.Close()

	dset, err := group.CreateDatasetWith(name, dtype, space, plist)
	if err != nil {
		return nil, fmt.Errorf("h5out: %s dataset: %w", name, err)
	}
	return dset, nil
}

// writeArrayToTable extends dataset by len(*data) rows and writes data into
// the new tail.
func writeArrayToTable[T any](dataset *hdf5.Dataset, data *[]T) error {
	n := uint(len(*data))
	memspace, err := hdf5.CreateSimpleDataspace([]uint{n}, nil)
	if err != nil {
		return fmt.Errorf("memory dataspace: %w", err)
	}
	defer memspace.Close()

	current := dataset.Space()
	dims, _, err := current.SimpleExtentDims()
	current.Close()
	if err != nil {
		return fmt.Errorf("extent: %w", err)
	}
	rows := dims[0]
	if err := dataset.Resize([]uint{rows + n}); err != nil {
		return fmt.Errorf("resize: %w", err)
	}

	filespace := dataset.Space()
	defer filespace.Close()
	if err := filespace.SelectHyperslab([]uint{rows}, nil, []uint{n}, nil); err != nil {
		return fmt.Errorf("hyperslab: %w", err)
	}

	return dataset.WriteSubset(data, memspace, filespace)
}
