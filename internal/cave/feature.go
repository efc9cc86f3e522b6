package cave

// Feature identifies the terrain in one map cell.
//
// Wall sub-types matter to the tunneler: "outer" walls surround rooms and are
// the only walls a corridor may pierce; "solid" walls mark grids next to an
// existing piercing (or other forbidden spots) so that no two corridors enter
// a room through adjacent grids; "perm" walls are the level boundary and the
// untouchable parts of vaults. Plain rock is what corridors carve through.
type Feature uint8

const (
	FeatNone Feature = iota // unset; only legal mid-generation
	FeatFloor
	FeatRock      // plain granite fill
	FeatWallInner // wall inside a room
	FeatWallOuter // pierceable room wall
	FeatWallSolid // never pierced
	FeatPerm      // permanent: level edge, vault cores, shop buildings
	FeatMagma
	FeatQuartz
	FeatMagmaGold  // magma vein with visible treasure
	FeatQuartzGold // quartz vein with visible treasure
	FeatOpenDoor
	FeatBrokenDoor
	FeatClosedDoor
	FeatSecretDoor
	FeatStairsDown
	FeatStairsUp
	FeatRubble
	FeatShop // shop entrance; the shop index lives in Cave.ShopAt
)

// IsWall reports whether f blocks movement as some kind of wall or vein.
func (f Feature) IsWall() bool {
	switch f {
	case FeatRock, FeatWallInner, FeatWallOuter, FeatWallSolid, FeatPerm,
		FeatMagma, FeatQuartz, FeatMagmaGold, FeatQuartzGold:
		return true
	}
	return false
}

// IsGranite reports whether f is plain granite of any sub-type.
func (f Feature) IsGranite() bool {
	switch f {
	case FeatRock, FeatWallInner, FeatWallOuter, FeatWallSolid:
		return true
	}
	return false
}

// IsMineral reports whether f is a magma or quartz vein.
func (f Feature) IsMineral() bool {
	switch f {
	case FeatMagma, FeatQuartz, FeatMagmaGold, FeatQuartzGold:
		return true
	}
	return false
}

// IsDoor reports whether f is a door in any state.
func (f Feature) IsDoor() bool {
	switch f {
	case FeatOpenDoor, FeatBrokenDoor, FeatClosedDoor, FeatSecretDoor:
		return true
	}
	return false
}

// IsStairs reports whether f is a staircase.
func (f Feature) IsStairs() bool {
	return f == FeatStairsDown || f == FeatStairsUp
}

// IsPassable reports whether a creature can occupy a cell with this terrain.
// Closed and secret doors count as passable for connectivity purposes: they
// can always be opened or found.
func (f Feature) IsPassable() bool {
	switch f {
	case FeatFloor, FeatOpenDoor, FeatBrokenDoor, FeatClosedDoor,
		FeatSecretDoor, FeatStairsDown, FeatStairsUp, FeatRubble, FeatShop:
		return true
	}
	return false
}
