package generator

import (
	"math/rand"

	"gloomdeep/pkg/engine/world"
	"gloomdeep/pkg/game/entities"
	"gloomdeep/pkg/game/state"
)

// BSPGenerator generates dungeons using Binary Space Partitioning
type BSPGenerator struct{}

// Name returns the name of this generator
func (g *BSPGenerator) Name() string {
	return "BSP Tree"
}

// bspNode represents a node in the BSP tree
type bspNode struct {
	x, y, width, height int
	left, right         *bspNode
	room                *bspRoom
}

// bspRoom represents a room within a BSP leaf node
type bspRoom struct {
	x, y, width, height int
}

// Constants for BSP generation
const (
	minNodeSize = 8 // Minimum size of a BSP node
	minRoomSize = 4 // Minimum size of a room
	roomPadding = 2 // Padding between room and node edge
)

// contains reports whether a grid position lies inside the room
func (r *bspRoom) contains(row, col int) bool {
	return row >= r.y && row < r.y+r.height && col >= r.x && col < r.x+r.width
}

// center returns the room's center position
func (r *bspRoom) center() (row, col int) {
	return r.y + r.height/2, r.x + r.width/2
}

// Generate builds a populated level using the BSP algorithm
func (g *BSPGenerator) Generate(depth int, rng *rand.Rand, opts state.Options) *state.Game {
	// Start small and scale grid size with depth (add 2 for perimeter)
	rows := 14 + depth*4
	cols := 26 + depth*6
	if rows > 60 {
		rows = 60
	}
	if cols > 100 {
		cols = 100
	}

	grid := world.NewGrid(rows, cols)

	// Build the BSP tree (leaving a 1 cell border of wall)
	root := &bspNode{
		x:      1,
		y:      1,
		width:  cols - 2,
		height: rows - 2,
	}

	minSize := minNodeSize - depth/3
	if minSize < 6 {
		minSize = 6
	}
	splitBSP(root, minSize, rng)

	createRooms(root, rng)
	rooms := collectRooms(root)

	carveRooms(grid, root)
	connectRooms(grid, root, rng)

	placeDoors(grid, rooms, rng)

	if err := grid.Validate(); err != "" {
		panic("generated invalid grid: " + err)
	}

	game := state.NewGame(rng, opts)
	game.Grid = grid
	game.Depth = depth

	startRoom := rooms[rng.Intn(len(rooms))]
	startRow, startCol := startRoom.center()
	game.Player = entities.NewPlayer(startRow, startCol)

	placeStairs(grid, startRow, startCol)
	populate(game, rooms, startRoom)

	world.RevealFOVDefault(grid, game.PlayerCell())
	return game
}

// splitBSP recursively splits a BSP node
func splitBSP(node *bspNode, minSize int, rng *rand.Rand) {
	if node.width < minSize*2 && node.height < minSize*2 {
		return
	}

	var splitHorizontal bool
	switch {
	case node.width > node.height && node.width >= minSize*2:
		splitHorizontal = false
	case node.height > node.width && node.height >= minSize*2:
		splitHorizontal = true
	case node.width >= minSize*2 && node.height >= minSize*2:
		splitHorizontal = rng.Intn(2) == 0
	case node.width >= minSize*2:
		splitHorizontal = false
	case node.height >= minSize*2:
		splitHorizontal = true
	default:
		return
	}

	if splitHorizontal {
		splitPoint := minSize + rng.Intn(node.height-minSize*2+1)
		node.left = &bspNode{x: node.x, y: node.y, width: node.width, height: splitPoint}
		node.right = &bspNode{x: node.x, y: node.y + splitPoint, width: node.width, height: node.height - splitPoint}
	} else {
		splitPoint := minSize + rng.Intn(node.width-minSize*2+1)
		node.left = &bspNode{x: node.x, y: node.y, width: splitPoint, height: node.height}
		node.right = &bspNode{x: node.x + splitPoint, y: node.y, width: node.width - splitPoint, height: node.height}
	}

	splitBSP(node.left, minSize, rng)
	splitBSP(node.right, minSize, rng)
}

// createRooms creates rooms in leaf nodes
func createRooms(node *bspNode, rng *rand.Rand) {
	if node.left != nil || node.right != nil {
		if node.left != nil {
			createRooms(node.left, rng)
		}
		if node.right != nil {
			createRooms(node.right, rng)
		}
		return
	}

	roomWidth := minRoomSize + rng.Intn(node.width-minRoomSize-roomPadding+1)
	roomHeight := minRoomSize + rng.Intn(node.height-minRoomSize-roomPadding+1)

	if roomWidth > node.width-roomPadding {
		roomWidth = node.width - roomPadding
	}
	if roomHeight > node.height-roomPadding {
		roomHeight = node.height - roomPadding
	}

	node.room = &bspRoom{
		x:      node.x + rng.Intn(node.width-roomWidth),
		y:      node.y + rng.Intn(node.height-roomHeight),
		width:  roomWidth,
		height: roomHeight,
	}
}

// carveRooms sets room cells to floor
func carveRooms(grid *world.Grid, node *bspNode) {
	if node.room != nil {
		for row := node.room.y; row < node.room.y+node.room.height; row++ {
			for col := node.room.x; col < node.room.x+node.room.width; col++ {
				grid.SetTile(row, col, world.TileFloor)
			}
		}
	}

	if node.left != nil {
		carveRooms(grid, node.left)
	}
	if node.right != nil {
		carveRooms(grid, node.right)
	}
}

// connectRooms joins sibling subtrees with L-shaped corridors
func connectRooms(grid *world.Grid, node *bspNode, rng *rand.Rand) {
	if node.left == nil || node.right == nil {
		return
	}

	leftRoom := getRoom(node.left, rng)
	rightRoom := getRoom(node.right, rng)

	if leftRoom != nil && rightRoom != nil {
		leftRow, leftCol := leftRoom.center()
		rightRow, rightCol := rightRoom.center()

		if rng.Intn(2) == 0 {
			carveCorridorHorizontal(grid, leftRow, leftCol, rightCol)
			carveCorridorVertical(grid, rightCol, leftRow, rightRow)
		} else {
			carveCorridorVertical(grid, leftCol, leftRow, rightRow)
			carveCorridorHorizontal(grid, rightRow, leftCol, rightCol)
		}
	}

	connectRooms(grid, node.left, rng)
	connectRooms(grid, node.right, rng)
}

// carveCorridorHorizontal carves a one-cell horizontal corridor
func carveCorridorHorizontal(grid *world.Grid, row, startCol, endCol int) {
	if startCol > endCol {
		startCol, endCol = endCol, startCol
	}
	for col := startCol; col <= endCol; col++ {
		cell := grid.GetCell(row, col)
		if cell != nil && cell.Tile == world.TileWall {
			grid.SetTile(row, col, world.TileFloor)
		}
	}
}

// carveCorridorVertical carves a one-cell vertical corridor
func carveCorridorVertical(grid *world.Grid, col, startRow, endRow int) {
	if startRow > endRow {
		startRow, endRow = endRow, startRow
	}
	for row := startRow; row <= endRow; row++ {
		cell := grid.GetCell(row, col)
		if cell != nil && cell.Tile == world.TileWall {
			grid.SetTile(row, col, world.TileFloor)
		}
	}
}

// getRoom returns a room from a subtree (picks randomly from leaves)
func getRoom(node *bspNode, rng *rand.Rand) *bspRoom {
	if node.room != nil {
		return node.room
	}

	var leftRoom, rightRoom *bspRoom
	if node.left != nil {
		leftRoom = getRoom(node.left, rng)
	}
	if node.right != nil {
		rightRoom = getRoom(node.right, rng)
	}

	if leftRoom != nil && rightRoom != nil {
		if rng.Intn(2) == 0 {
			return leftRoom
		}
		return rightRoom
	}
	if leftRoom != nil {
		return leftRoom
	}
	return rightRoom
}

// collectRooms collects all rooms from the BSP tree
func collectRooms(node *bspNode) []*bspRoom {
	var rooms []*bspRoom
	if node.room != nil {
		rooms = append(rooms, node.room)
	}
	if node.left != nil {
		rooms = append(rooms, collectRooms(node.left)...)
	}
	if node.right != nil {
		rooms = append(rooms, collectRooms(node.right)...)
	}
	return rooms
}

// inAnyRoom reports whether a position lies inside any room
func inAnyRoom(rooms []*bspRoom, row, col int) bool {
	for _, r := range rooms {
		if r.contains(row, col) {
			return true
		}
	}
	return false
}

// placeDoors converts corridor cells at room thresholds into doors.
// A threshold is a corridor cell flanked by walls on one axis and floors on
// the other, touching a room. Roughly half the thresholds get a door, and
// some of those are locked.
func placeDoors(grid *world.Grid, rooms []*bspRoom, rng *rand.Rand) {
	grid.ForEachCell(func(row, col int, cell *world.Cell) {
		if cell.Tile != world.TileFloor || inAnyRoom(rooms, row, col) {
			return
		}

		north := grid.GetCell(row-1, col)
		south := grid.GetCell(row+1, col)
		east := grid.GetCell(row, col+1)
		west := grid.GetCell(row, col-1)
		if north == nil || south == nil || east == nil || west == nil {
			return
		}

		verticalPassage := north.Tile.Walkable() && south.Tile.Walkable() &&
			east.Tile == world.TileWall && west.Tile == world.TileWall
		horizontalPassage := east.Tile.Walkable() && west.Tile.Walkable() &&
			north.Tile == world.TileWall && south.Tile == world.TileWall
		if !verticalPassage && !horizontalPassage {
			return
		}

		touchesRoom := inAnyRoom(rooms, row-1, col) || inAnyRoom(rooms, row+1, col) ||
			inAnyRoom(rooms, row, col-1) || inAnyRoom(rooms, row, col+1)
		if !touchesRoom {
			return
		}

		if rng.Intn(2) == 0 {
			return
		}
		if rng.Intn(4) == 0 {
			grid.SetTile(row, col, world.TileDoorLocked)
		} else {
			grid.SetTile(row, col, world.TileDoorClosed)
		}
	})
}

// placeStairs puts the stairs down on the walkable cell furthest from the
// start, by path distance
func placeStairs(grid *world.Grid, startRow, startCol int) {
	type cellDist struct {
		cell *world.Cell
		dist int
	}

	start := grid.GetCell(startRow, startCol)
	visited := make(map[*world.Cell]bool)
	queue := []cellDist{{start, 0}}
	visited[start] = true

	furthest := start
	maxDist := 0

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current.dist > maxDist {
			maxDist = current.dist
			furthest = current.cell
		}

		for _, dir := range world.AllDirections() {
			if dir.Diagonal() {
				continue
			}
			dRow, dCol := dir.Delta()
			next := grid.GetCell(current.cell.Row+dRow, current.cell.Col+dCol)
			if next == nil || visited[next] {
				continue
			}
			// Doors count as passable for distance purposes
			if next.Tile == world.TileWall {
				continue
			}
			visited[next] = true
			queue = append(queue, cellDist{next, current.dist + 1})
		}
	}

	grid.SetTile(furthest.Row, furthest.Col, world.TileStairsDown)
}

// populate fills the level with the monsters, traps and loot for its depth
func populate(g *state.Game, rooms []*bspRoom, startRoom *bspRoom) {
	rng := g.Rand

	// Track used cells so nothing stacks
	used := map[[2]int]bool{
		{g.Player.Row, g.Player.Col}: true,
	}

	freeCell := func(room *bspRoom) (int, int, bool) {
		for tries := 0; tries < 20; tries++ {
			row := room.y + rng.Intn(room.height)
			col := room.x + rng.Intn(room.width)
			cell := g.Grid.GetCell(row, col)
			if cell == nil || cell.Tile != world.TileFloor || used[[2]int{row, col}] {
				continue
			}
			used[[2]int{row, col}] = true
			return row, col, true
		}
		return 0, 0, false
	}

	// A pack hound starts at the player's side
	for _, dir := range world.AllDirections() {
		dRow, dCol := dir.Delta()
		row, col := g.Player.Row+dRow, g.Player.Col+dCol
		cell := g.Grid.GetCell(row, col)
		if cell != nil && cell.Tile.Walkable() && !used[[2]int{row, col}] {
			used[[2]int{row, col}] = true
			g.Monsters = append(g.Monsters, entities.NewAlly(entities.MonsterHound, row, col))
			break
		}
	}

	hostiles := []entities.MonsterKind{
		entities.MonsterRat, entities.MonsterGhoul,
		entities.MonsterSpider, entities.MonsterViper,
	}

	lockedDoors := 0
	g.Grid.ForEachCell(func(row, col int, cell *world.Cell) {
		if cell.Tile == world.TileDoorLocked {
			lockedDoors++
		}
	})
	keysToPlace := lockedDoors
	lockpicksToPlace := 1

	for _, room := range rooms {
		if room == startRoom {
			continue
		}

		// Monsters
		for i := 0; i < rng.Intn(3); i++ {
			if row, col, ok := freeCell(room); ok {
				kind := hostiles[rng.Intn(len(hostiles))]
				g.Monsters = append(g.Monsters, entities.NewMonster(kind, row, col))
			}
		}

		// Loot
		switch rng.Intn(5) {
		case 0:
			if row, col, ok := freeCell(room); ok {
				g.DropItem(entities.NewGold(5+rng.Intn(20)), row, col)
			}
		case 1:
			if row, col, ok := freeCell(room); ok {
				g.DropItem(entities.NewItem(entities.ItemChest, "oak chest"), row, col)
			}
		case 2:
			if row, col, ok := freeCell(room); ok {
				g.DropItem(entities.NewItem(entities.ItemRation, "ration"), row, col)
			}
		case 3:
			if row, col, ok := freeCell(room); ok {
				g.DropItem(entities.NewItem(entities.ItemPotion, "healing draught"), row, col)
			}
		case 4:
			if row, col, ok := freeCell(room); ok {
				g.DropItem(entities.NewAmmo("sling stones", entities.ClassSling, 4+rng.Intn(8)), row, col)
			}
		}

		// Keys and the lockpick go out before traps so they stay collectable
		if keysToPlace > 0 {
			if row, col, ok := freeCell(room); ok {
				g.DropItem(entities.NewItem(entities.ItemKey, "iron key"), row, col)
				keysToPlace--
			}
		}
		if lockpicksToPlace > 0 && rng.Intn(3) == 0 {
			if row, col, ok := freeCell(room); ok {
				g.DropItem(entities.NewItem(entities.ItemLockpick, "lockpick"), row, col)
				lockpicksToPlace--
			}
		}

		// Traps
		if rng.Intn(3) == 0 {
			if row, col, ok := freeCell(room); ok {
				kind := entities.TrapSpike
				if rng.Intn(3) == 0 {
					kind = entities.TrapWarp
				}
				g.Traps = append(g.Traps, entities.NewTrap(kind, row, col))
			}
		}
	}

	// Leftover keys land wherever there is still space
	for keysToPlace > 0 {
		room := rooms[rng.Intn(len(rooms))]
		row, col, ok := freeCell(room)
		if !ok {
			break
		}
		g.DropItem(entities.NewItem(entities.ItemKey, "iron key"), row, col)
		keysToPlace--
	}

	// A bow in one room, matching arrows in another
	if len(rooms) > 2 {
		if row, col, ok := freeCell(rooms[rng.Intn(len(rooms))]); ok {
			g.DropItem(entities.NewRangedWeapon("short bow", entities.ClassBow), row, col)
		}
		if row, col, ok := freeCell(rooms[rng.Intn(len(rooms))]); ok {
			g.DropItem(entities.NewAmmo("arrows", entities.ClassBow, 6+rng.Intn(10)), row, col)
		}
	}
}
