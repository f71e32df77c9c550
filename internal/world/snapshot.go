package world

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"

	"gritgrid/internal/material"
)

// Snapshots persist dimensions, the cell array and the owner array. Pending
// force, pressure gradient and the render override are derived or debug-only
// and are excluded.

var snapshotMagic = [4]byte{'G', 'G', 'S', '1'}

type cellRecord struct {
	Material uint8
	_        [7]byte
	Fill     float64
	ComX     float64
	ComY     float64
	VelX     float64
	VelY     float64
	Pressure float64
}

// WriteSnapshot writes the grid in the binary snapshot format.
func (g *Grid) WriteSnapshot(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.Write(snapshotMagic[:]); err != nil {
		return err
	}
	dims := [2]uint32{uint32(g.W), uint32(g.H)}
	if err := binary.Write(bw, binary.LittleEndian, dims); err != nil {
		return err
	}
	for i := range g.cells {
		c := &g.cells[i]
		rec := cellRecord{
			Material: uint8(c.Material),
			Fill:     c.Fill,
			ComX:     c.COM[0],
			ComY:     c.COM[1],
			VelX:     c.Velocity[0],
			VelY:     c.Velocity[1],
			Pressure: c.Pressure,
		}
		if err := binary.Write(bw, binary.LittleEndian, rec); err != nil {
			return err
		}
	}
	if err := binary.Write(bw, binary.LittleEndian, g.owners); err != nil {
		return err
	}
	return bw.Flush()
}

// ReadSnapshot restores a grid from the binary snapshot format.
func ReadSnapshot(r io.Reader) (*Grid, error) {
	br := bufio.NewReader(r)
	var magic [4]byte
	if _, err := io.ReadFull(br, magic[:]); err != nil {
		return nil, err
	}
	if magic != snapshotMagic {
		return nil, fmt.Errorf("snapshot: bad magic %q", magic)
	}
	var dims [2]uint32
	if err := binary.Read(br, binary.LittleEndian, &dims); err != nil {
		return nil, err
	}
	w, h := int(dims[0]), int(dims[1])
	if w <= 0 || h <= 0 || w*h > 1<<26 {
		return nil, fmt.Errorf("snapshot: implausible dimensions %dx%d", w, h)
	}
	g := NewGrid(w, h)
	for i := range g.cells {
		var rec cellRecord
		if err := binary.Read(br, binary.LittleEndian, &rec); err != nil {
			return nil, err
		}
		c := &g.cells[i]
		c.Material = material.Material(rec.Material)
		c.Fill = rec.Fill
		c.COM[0], c.COM[1] = rec.ComX, rec.ComY
		c.Velocity[0], c.Velocity[1] = rec.VelX, rec.VelY
		c.Pressure = rec.Pressure
	}
	if err := binary.Read(br, binary.LittleEndian, g.owners); err != nil {
		return nil, err
	}
	return g, nil
}

type cellJSON struct {
	M   uint8      `json:"m"`
	F   float64    `json:"f"`
	Com [2]float64 `json:"com"`
	Vel [2]float64 `json:"vel"`
	P   float64    `json:"p"`
}

type snapshotJSON struct {
	Width  int        `json:"width"`
	Height int        `json:"height"`
	Cells  []cellJSON `json:"cells"`
	Owners []uint32   `json:"owners"`
}

// WriteSnapshotText writes the grid as JSON.
func (g *Grid) WriteSnapshotText(w io.Writer) error {
	snap := snapshotJSON{
		Width:  g.W,
		Height: g.H,
		Cells:  make([]cellJSON, len(g.cells)),
		Owners: g.owners,
	}
	for i := range g.cells {
		c := &g.cells[i]
		snap.Cells[i] = cellJSON{
			M:   uint8(c.Material),
			F:   c.Fill,
			Com: [2]float64{c.COM[0], c.COM[1]},
			Vel: [2]float64{c.Velocity[0], c.Velocity[1]},
			P:   c.Pressure,
		}
	}
	enc := json.NewEncoder(w)
	return enc.Encode(&snap)
}

// ReadSnapshotText restores a grid from the JSON snapshot form.
func ReadSnapshotText(r io.Reader) (*Grid, error) {
	var snap snapshotJSON
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, err
	}
	if snap.Width <= 0 || snap.Height <= 0 {
		return nil, fmt.Errorf("snapshot: implausible dimensions %dx%d", snap.Width, snap.Height)
	}
	if len(snap.Cells) != snap.Width*snap.Height || len(snap.Owners) != len(snap.Cells) {
		return nil, fmt.Errorf("snapshot: array lengths do not match %dx%d", snap.Width, snap.Height)
	}
	g := NewGrid(snap.Width, snap.Height)
	for i, cj := range snap.Cells {
		c := &g.cells[i]
		c.Material = material.Material(cj.M)
		c.Fill = cj.F
		c.COM[0], c.COM[1] = cj.Com[0], cj.Com[1]
		c.Velocity[0], c.Velocity[1] = cj.Vel[0], cj.Vel[1]
		c.Pressure = cj.P
	}
	copy(g.owners, snap.Owners)
	return g, nil
}

// SetGrid replaces the world's grid, e.g. after restoring a snapshot. The
// display cache and pressure scratch follow the new dimensions.
func (w *World) SetGrid(g *Grid) {
	w.grid = g
	w.cfg.Width = g.W
	w.cfg.Height = g.H
	w.pressure.resize(g.W * g.H)
	w.blocked = w.blocked[:0]
	w.display = make([]uint8, g.W*g.H)
	w.displayDirty = true
}
