package routing

import (
	da "github.com/rotax-engine/rotax/pkg/datastructure"
)

type VertexInfo struct {
	travelCost float64
	parent     da.Index
	heapNode   *da.PriorityQueueNode[da.Index]
}

func NewVertexInfo(travelCost float64, parent da.Index,
	heapNode *da.PriorityQueueNode[da.Index]) *VertexInfo {
	return &VertexInfo{
		travelCost: travelCost,
		parent:     parent,
		heapNode:   heapNode,
	}
}

func (vi *VertexInfo) GetTravelCost() float64 {
	return vi.travelCost
}

func (vi *VertexInfo) GetParent() da.Index {
	return vi.parent
}

func (vi *VertexInfo) GetHeapNode() *da.PriorityQueueNode[da.Index] {
	return vi.heapNode
}

func (vi *VertexInfo) UpdateTravelCost(travelCost float64) {
	vi.travelCost = travelCost
}

func (vi *VertexInfo) UpdateParent(parent da.Index) {
	vi.parent = parent
}

func (vi *VertexInfo) UpdateHeapNode(heapNode *da.PriorityQueueNode[da.Index]) {
	vi.heapNode = heapNode
}
