// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

// Hit is the result of picking at a point in the view, as delivered
// by the picking engine. Node is the closest picked node, which can
// be a scene object or a widget handle, and Count is the total
// number of nodes under the point.
type Hit struct {
	Node  *Node
	Count int
}

// Empty returns true if nothing was picked.
func (h Hit) Empty() bool {
	return h.Count == 0 || h.Node == nil
}
