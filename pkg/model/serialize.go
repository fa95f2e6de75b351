package model

import (
	"github.com/tinylib/msgp/msgp"

	"github.com/geode-kernel/geode/pkg/basic"
)

// VertexIdentifierSerializationVersion is the current VertexIdentifier
// wire version (§6); VertexIdentifierVersions is the table
// EncodeRecord/DecodeRecord migrate records through.
const VertexIdentifierSerializationVersion basic.ArchiveVersion = 1

// VertexIdentifierVersions is the growable-archive version table for
// VertexIdentifier records (§4.A, §4.G, §6).
var VertexIdentifierVersions = basic.NewVersionTable(VertexIdentifierSerializationVersion)

// EncodeMsg writes cmv as its component UUID followed by its vertex index.
func (cmv ComponentMeshVertex) EncodeMsg(w *msgp.Writer) error {
	if err := cmv.Component.EncodeMsg(w); err != nil {
		return err
	}
	return w.WriteUint32(cmv.Vertex)
}

// DecodeMsg reads a ComponentMeshVertex written by EncodeMsg.
func (cmv *ComponentMeshVertex) DecodeMsg(r *msgp.Reader) error {
	if err := cmv.Component.DecodeMsg(r); err != nil {
		return err
	}
	v, err := r.ReadUint32()
	if err != nil {
		return err
	}
	cmv.Vertex = v
	return nil
}

// EncodeMsg writes the full registry: every registered component, then
// every unique vertex slot's member list, per §4.G ("VertexIdentifier is
// fully serializable"). toUnique is not written; DecodeMsg rebuilds it
// from members, since it is a pure derived index.
func (vi *VertexIdentifier) EncodeMsg(w *msgp.Writer) error {
	if err := w.WriteArrayHeader(uint32(len(vi.registered))); err != nil {
		return err
	}
	for component := range vi.registered {
		if err := component.EncodeMsg(w); err != nil {
			return err
		}
	}

	if err := w.WriteArrayHeader(uint32(len(vi.members))); err != nil {
		return err
	}
	for _, members := range vi.members {
		if err := w.WriteArrayHeader(uint32(len(members))); err != nil {
			return err
		}
		for _, cmv := range members {
			if err := cmv.EncodeMsg(w); err != nil {
				return err
			}
		}
	}
	return nil
}

// DecodeMsg replaces vi's contents with the registry written by EncodeMsg.
func (vi *VertexIdentifier) DecodeMsg(r *msgp.Reader) error {
	nbComponents, err := r.ReadArrayHeader()
	if err != nil {
		return err
	}
	registered := make(map[basic.UUID]bool, nbComponents)
	for i := uint32(0); i < nbComponents; i++ {
		var component basic.UUID
		if err := component.DecodeMsg(r); err != nil {
			return err
		}
		registered[component] = true
	}

	nbUnique, err := r.ReadArrayHeader()
	if err != nil {
		return err
	}
	members := make([][]ComponentMeshVertex, nbUnique)
	toUnique := make(map[ComponentMeshVertex]basic.Index, nbUnique)
	for u := uint32(0); u < nbUnique; u++ {
		nbMembers, err := r.ReadArrayHeader()
		if err != nil {
			return err
		}
		slot := make([]ComponentMeshVertex, nbMembers)
		for j := uint32(0); j < nbMembers; j++ {
			if err := slot[j].DecodeMsg(r); err != nil {
				return err
			}
			toUnique[slot[j]] = basic.Index(u)
		}
		members[u] = slot
	}

	vi.registered = registered
	vi.members = members
	vi.toUnique = toUnique
	return nil
}
