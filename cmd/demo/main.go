package main

import (
	"fmt"
	stdmath "math"
	"time"

	"softgl/core"
	"softgl/materials"
	"softgl/math"
	"softgl/renderer"
	"softgl/scene"
)

// collBox is an axis-aligned rectangle in XZ used for player collision.
type collBox struct {
	minX, maxX, minZ, maxZ float32
}

const playerRadius = float32(0.35) // player XZ footprint radius

// resolvePlayerCollision pushes pos outside every overlapping collBox.
func resolvePlayerCollision(pos math.Vec3, boxes []collBox) math.Vec3 {
	for _, b := range boxes {
		eMinX := b.minX - playerRadius
		eMaxX := b.maxX + playerRadius
		eMinZ := b.minZ - playerRadius
		eMaxZ := b.maxZ + playerRadius

		if pos.X <= eMinX || pos.X >= eMaxX || pos.Z <= eMinZ || pos.Z >= eMaxZ {
			continue // no overlap
		}

		dLeft := pos.X - eMinX
		dRight := eMaxX - pos.X
		dFront := pos.Z - eMinZ
		dBack := eMaxZ - pos.Z

		switch {
		case dLeft <= dRight && dLeft <= dFront && dLeft <= dBack:
			pos.X = eMinX
		case dRight <= dLeft && dRight <= dFront && dRight <= dBack:
			pos.X = eMaxX
		case dFront <= dLeft && dFront <= dRight && dFront <= dBack:
			pos.Z = eMinZ
		default:
			pos.Z = eMaxZ
		}
	}
	return pos
}

// CameraController handles keyboard/mouse input with gravity and ground collision.
type CameraController struct {
	moveSpeed      float32
	lookSpeed      float32
	lastMouseX     float64
	lastMouseY     float64
	firstMouse     bool
	rightMouseDown bool
	yaw            float32
	pitch          float32

	velocityY      float32
	onGround       bool
	eyeHeight      float32
	jumpKeyWasDown bool

	CollBoxes []collBox
}

const (
	gravity   = -18.0
	jumpSpeed = 7.0
)

func NewCameraController() *CameraController {
	return &CameraController{
		moveSpeed:  6.0,
		lookSpeed:  0.003,
		firstMouse: true,
		yaw:        -90.0,
		pitch:      0.0,
		eyeHeight:  1.7,
		onGround:   true,
	}
}

func (cc *CameraController) Update(window *core.Window, camera *scene.Camera, deltaTime float32) {
	if deltaTime > 0.05 {
		deltaTime = 0.05
	}

	cc.rightMouseDown = window.IsMouseButtonPressed(1)
	if cc.rightMouseDown {
		mouseX, mouseY := window.GetCursorPos()
		if cc.firstMouse {
			cc.lastMouseX = mouseX
			cc.lastMouseY = mouseY
			cc.firstMouse = false
		}
		cc.yaw += float32(mouseX-cc.lastMouseX) * cc.lookSpeed
		cc.pitch += float32(cc.lastMouseY-mouseY) * cc.lookSpeed
		if cc.pitch > 88.0 {
			cc.pitch = 88.0
		}
		if cc.pitch < -88.0 {
			cc.pitch = -88.0
		}
		cc.lastMouseX = mouseX
		cc.lastMouseY = mouseY
	} else {
		cc.firstMouse = true
	}

	yawRad := cc.yaw * stdmath.Pi / 180.0
	pitchRad := cc.pitch * stdmath.Pi / 180.0

	forward := math.Vec3{
		X: float32(stdmath.Cos(float64(yawRad)) * stdmath.Cos(float64(pitchRad))),
		Y: float32(stdmath.Sin(float64(pitchRad))),
		Z: float32(stdmath.Sin(float64(yawRad)) * stdmath.Cos(float64(pitchRad))),
	}.Normalize()

	moveForward := math.Vec3{
		X: float32(stdmath.Cos(float64(yawRad))),
		Y: 0,
		Z: float32(stdmath.Sin(float64(yawRad))),
	}.Normalize()
	right := math.Vec3{
		X: float32(stdmath.Cos(float64(yawRad - stdmath.Pi/2))),
		Y: 0,
		Z: float32(stdmath.Sin(float64(yawRad - stdmath.Pi/2))),
	}.Normalize()

	hMove := math.Vec3{}
	if window.IsKeyPressed(core.KeyW) {
		hMove = hMove.Add(moveForward.Mul(cc.moveSpeed * deltaTime))
	}
	if window.IsKeyPressed(core.KeyS) {
		hMove = hMove.Add(moveForward.Mul(-cc.moveSpeed * deltaTime))
	}
	if window.IsKeyPressed(core.KeyD) {
		hMove = hMove.Add(right.Mul(cc.moveSpeed * deltaTime))
	}
	if window.IsKeyPressed(core.KeyA) {
		hMove = hMove.Add(right.Mul(-cc.moveSpeed * deltaTime))
	}

	spaceDown := window.IsKeyPressed(core.KeySpace)
	if spaceDown && !cc.jumpKeyWasDown && cc.onGround {
		cc.velocityY = jumpSpeed
		cc.onGround = false
	}
	cc.jumpKeyWasDown = spaceDown

	if !cc.onGround {
		cc.velocityY += gravity * deltaTime
	}

	newPos := camera.Position.Add(hMove)
	newPos.Y += cc.velocityY * deltaTime

	groundY := cc.eyeHeight
	if newPos.Y <= groundY {
		newPos.Y = groundY
		cc.velocityY = 0
		cc.onGround = true
	}

	newPos = resolvePlayerCollision(newPos, cc.CollBoxes)

	camera.SetPosition(newPos)
	up := forward.Cross(right).Normalize()
	if up.Y < 0 {
		up.Y = -up.Y
	}
	camera.LookAt(newPos.Add(forward), up)
}

func main() {
	fmt.Println("Starting town square demo...")

	windowConfig := core.DefaultWindowConfig()
	windowConfig.Title = "softgl - Town Square"
	windowConfig.Width = 1280
	windowConfig.Height = 720

	window, err := core.NewWindow(windowConfig)
	if err != nil {
		fmt.Printf("Failed to create window: %v\n", err)
		return
	}
	defer window.Destroy()

	engine, err := renderer.NewEngine(window)
	if err != nil {
		fmt.Printf("Failed to create render engine: %v\n", err)
		return
	}
	defer engine.Destroy()

	// ── Scene setup ───────────────────────────────────────────────────────────
	s := scene.NewScene()
	s.SkyColor = core.Color{R: 0.18, G: 0.22, B: 0.50, A: 1}

	camera := scene.NewCamera(float32(stdmath.Pi)/3, 16.0/9.0, 0.1, 500.0)
	camera.SetPosition(math.Vec3{X: 0, Y: 1.7, Z: 12})
	camera.LookAt(math.Vec3{X: 0, Y: 1.7, Z: 0}, math.Vec3Up)
	s.SetCamera(camera)

	// ── Materials ─────────────────────────────────────────────────────────────
	matGround := materials.NewMaterial("Ground", core.Color{R: 0.62, G: 0.58, B: 0.52, A: 1})
	matGround.Shininess = 4
	matGround.Specular = core.Color{R: 0.05, G: 0.05, B: 0.05, A: 1}

	matStone := materials.NewMaterial("Stone", core.Color{R: 0.58, G: 0.55, B: 0.50, A: 1})
	matStone.Shininess = 8

	matBrick := materials.NewMaterial("Brick", core.Color{R: 0.70, G: 0.43, B: 0.30, A: 1})
	matBrick.Shininess = 4

	matPlaster := materials.NewMaterial("Plaster", core.Color{R: 0.90, G: 0.87, B: 0.78, A: 1})
	matPlaster.Shininess = 16

	matRoof := materials.NewMaterial("Roof", core.Color{R: 0.32, G: 0.30, B: 0.28, A: 1})

	matTrunk := materials.NewMaterial("Trunk", core.Color{R: 0.42, G: 0.28, B: 0.13, A: 1})
	matTrunk.Shininess = 4

	matLeaves := materials.NewMaterial("Leaves", core.Color{R: 0.12, G: 0.42, B: 0.15, A: 1})
	matLeaves.Shininess = 4

	matMarble := materials.MetalMaterial()
	matMarble.Name = "Marble"
	matMarble.Diffuse = core.Color{R: 0.92, G: 0.90, B: 0.86, A: 1}
	matMarble.Shininess = 64

	matWater := materials.NewMaterial("Water", core.Color{R: 0.28, G: 0.52, B: 0.72, A: 1})
	matWater.Shininess = 96

	matMetal := materials.MetalMaterial()

	matLamp := materials.EmissiveMaterial(1.0, 0.85, 0.45)
	matLamp.Name = "LampGlow"

	// ── Helper: place a scaled cube ───────────────────────────────────────────
	addBox := func(name string, pos math.Vec3, sx, sy, sz float32, mat *materials.Material) {
		m := scene.CreateCube(1.0)
		m.Material = mat
		n := scene.NewNode(name)
		n.Mesh = m
		n.SetPosition(pos)
		n.SetScale(math.Vec3{X: sx, Y: sy, Z: sz})
		s.AddNode(n)
	}

	// ── Ground plane ─────────────────────────────────────────────────────────
	groundMesh := scene.CreatePlane(80, 80, 1)
	groundMesh.Material = matGround
	groundNode := scene.NewNode("Ground")
	groundNode.Mesh = groundMesh
	s.AddNode(groundNode)

	gridMesh := scene.CreateGrid(80, 40)
	gridNode := scene.NewNode("Grid")
	gridNode.Mesh = gridMesh
	s.AddNode(gridNode)

	// ── Buildings ─────────────────────────────────────────────────────────────
	addBox("Bldg_NW", math.Vec3{X: -15, Y: 4.5, Z: -15}, 9, 9, 9, matStone)
	addBox("Bldg_NW_roof", math.Vec3{X: -15, Y: 9.5, Z: -15}, 10, 1, 10, matRoof)

	addBox("Bldg_NE", math.Vec3{X: 16, Y: 3.5, Z: -15}, 12, 7, 10, matBrick)
	addBox("Bldg_NE_roof", math.Vec3{X: 16, Y: 7.5, Z: -15}, 13, 1, 11, matRoof)

	addBox("Bldg_SW", math.Vec3{X: -15, Y: 3, Z: 16}, 8, 6, 8, matPlaster)
	addBox("Bldg_SW_roof", math.Vec3{X: -15, Y: 6.5, Z: 16}, 9, 1, 9, matRoof)

	addBox("Bldg_SE", math.Vec3{X: 16, Y: 2.5, Z: 16}, 14, 5, 8, matStone)
	addBox("Bldg_SE_roof", math.Vec3{X: 16, Y: 5.5, Z: 16}, 15, 1, 9, matRoof)

	for i, wx := range []float32{-10, 10} {
		wm := scene.CreateCube(1.0)
		wm.Material = matStone
		wn := scene.NewNode(fmt.Sprintf("Wall_%d", i))
		wn.Mesh = wm
		wn.SetPosition(math.Vec3{X: wx, Y: 0.5, Z: 0})
		wn.SetScale(math.Vec3{X: 0.5, Y: 1, Z: 18})
		s.AddNode(wn)
	}

	// ── Fountain (center) ─────────────────────────────────────────────────────
	{
		base := scene.CreateCylinder(3.4, 0.4, 24)
		base.Material = matMarble
		bn := scene.NewNode("Fountain_Base")
		bn.Mesh = base
		bn.SetPosition(math.Vec3{X: 0, Y: 0.2, Z: 0})
		s.AddNode(bn)

		bowl := scene.CreateCylinder(3.0, 0.6, 24)
		bowl.Material = matMarble
		bo := scene.NewNode("Fountain_Bowl")
		bo.Mesh = bowl
		bo.SetPosition(math.Vec3{X: 0, Y: 0.7, Z: 0})
		s.AddNode(bo)

		water := scene.CreateCylinder(2.7, 0.12, 24)
		water.Material = matWater
		wo := scene.NewNode("Fountain_Water")
		wo.Mesh = water
		wo.SetPosition(math.Vec3{X: 0, Y: 0.46, Z: 0})
		s.AddNode(wo)

		pillar := scene.CreateCylinder(0.38, 2.8, 16)
		pillar.Material = matMarble
		pn := scene.NewNode("Fountain_Pillar")
		pn.Mesh = pillar
		pn.SetPosition(math.Vec3{X: 0, Y: 1.4, Z: 0})
		s.AddNode(pn)

		top := scene.CreateSphere(0.5, 16, 8)
		top.Material = matMarble
		tn := scene.NewNode("Fountain_Top")
		tn.Mesh = top
		tn.SetPosition(math.Vec3{X: 0, Y: 3.1, Z: 0})
		s.AddNode(tn)
	}

	// ── Trees ─────────────────────────────────────────────────────────────────
	treePos := []math.Vec3{
		{X: -8, Y: 0, Z: -5}, {X: 8, Y: 0, Z: -6},
		{X: -9, Y: 0, Z: 6}, {X: 9, Y: 0, Z: 5},
		{X: -6, Y: 0, Z: -11}, {X: 7, Y: 0, Z: -10},
	}
	for i, tp := range treePos {
		trunk := scene.CreateCylinder(0.22, 2.2, 8)
		trunk.Material = matTrunk
		tn := scene.NewNode(fmt.Sprintf("Trunk%d", i))
		tn.Mesh = trunk
		tn.SetPosition(math.Vec3{X: tp.X, Y: 1.1, Z: tp.Z})
		s.AddNode(tn)

		canopy := scene.CreateCone(1.7, 3.0, 16)
		canopy.Material = matLeaves
		cn := scene.NewNode(fmt.Sprintf("Canopy%d", i))
		cn.Mesh = canopy
		cn.SetPosition(math.Vec3{X: tp.X, Y: 3.1, Z: tp.Z})
		s.AddNode(cn)
	}

	// ── Lamp posts (geometry only — the pipeline supports one light, already
	// spent on the sun below) ──────────────────────────────────────────────────
	lampPos := []math.Vec3{
		{X: -5.5, Y: 0, Z: -5.5},
		{X: 5.5, Y: 0, Z: -5.5},
		{X: -5.5, Y: 0, Z: 5.5},
		{X: 5.5, Y: 0, Z: 5.5},
	}
	for i, lp := range lampPos {
		pole := scene.CreateCylinder(0.09, 4.8, 8)
		pole.Material = matMetal
		pn := scene.NewNode(fmt.Sprintf("LampPole%d", i))
		pn.Mesh = pole
		pn.SetPosition(math.Vec3{X: lp.X, Y: 2.4, Z: lp.Z})
		s.AddNode(pn)

		cap := scene.CreateSphere(0.28, 12, 6)
		cap.Material = matLamp
		cn := scene.NewNode(fmt.Sprintf("LampCap%d", i))
		cn.Mesh = cap
		cn.SetPosition(math.Vec3{X: lp.X, Y: 4.9, Z: lp.Z})
		s.AddNode(cn)
	}

	// ── Light ─────────────────────────────────────────────────────────────────
	// Direction/color/intensity managed by the DayNight cycle each frame.
	s.Light = &scene.Light{
		Position: math.Vec4{X: -0.55, Y: 0.75, Z: 0.35, W: 0},
		Ambient:  core.Color{R: 0.16, G: 0.18, B: 0.26, A: 1},
		Diffuse:  core.Color{R: 1.0, G: 0.90, B: 0.70, A: 1},
		Specular: core.Color{R: 1.0, G: 0.90, B: 0.70, A: 1},
	}

	// ── Collision boxes (world-space XZ extents: center ± scale/2) ───────────
	sceneCollBoxes := []collBox{
		{minX: -19.5, maxX: -10.5, minZ: -19.5, maxZ: -10.5},
		{minX: 10.0, maxX: 22.0, minZ: -20.0, maxZ: -10.0},
		{minX: -19.0, maxX: -11.0, minZ: 12.0, maxZ: 20.0},
		{minX: 9.0, maxX: 23.0, minZ: 12.0, maxZ: 20.0},
		{minX: -10.25, maxX: -9.75, minZ: -9.0, maxZ: 9.0},
		{minX: 9.75, maxX: 10.25, minZ: -9.0, maxZ: 9.0},
		{minX: -3.0, maxX: 3.0, minZ: -3.0, maxZ: 3.0},
	}

	engine.SetScene(s)

	// Day/night cycle — starts at noon (t=0), 120s per full day
	dayNight := NewDayNight()
	dayNight.Apply(s, s.Light)

	camController := NewCameraController()
	camController.CollBoxes = sceneCollBoxes

	frameCount := 0
	lastTime := time.Now()
	deltaTime := float32(0.016)
	fpsCounter := 0
	fpsLastTime := time.Now()

	fmt.Println("===========================================")
	fmt.Println("  softgl - Town Square Demo")
	fmt.Println("===========================================")
	fmt.Println("")
	fmt.Println("CAMERA CONTROLS:")
	fmt.Println("  W / S            - Move forward / backward")
	fmt.Println("  A / D            - Strafe left / right")
	fmt.Println("  Space            - Jump")
	fmt.Println("  Right Mouse Drag - Look around")
	fmt.Println("")
	fmt.Println("DAY/NIGHT:")
	fmt.Println("  N                - Pause / resume cycle")
	fmt.Println("  , / .            - Slow down / speed up cycle")
	fmt.Println("")
	fmt.Println("EXIT: ESC")
	fmt.Println("===========================================")
	fmt.Println("")

	dnKeyWasDown := false

	for !window.ShouldClose() {
		window.PollEvents()

		if window.IsKeyPressed(core.KeyEscape) {
			break
		}

		nDown := window.IsKeyPressed(core.KeyN)
		if nDown && !dnKeyWasDown {
			dayNight.Active = !dayNight.Active
			fmt.Printf("[DayNight] %s\n", map[bool]string{true: "RUNNING", false: "PAUSED"}[dayNight.Active])
		}
		dnKeyWasDown = nDown

		if window.IsKeyPressed(core.KeyComma) {
			dayNight.Speed += 20.0 * deltaTime
			if dayNight.Speed > 600 {
				dayNight.Speed = 600
			}
		}
		if window.IsKeyPressed(core.KeyPeriod) {
			dayNight.Speed -= 20.0 * deltaTime
			if dayNight.Speed < 10 {
				dayNight.Speed = 10
			}
		}

		dayNight.Update(deltaTime)
		dayNight.Apply(s, s.Light)

		camController.Update(window, camera, deltaTime)

		if err := engine.Render(); err != nil {
			width, height := window.GetFramebufferSize()
			if width > 0 && height > 0 {
				engine.Resize(width, height)
			}
		}

		frameCount++
		fpsCounter++
		now := time.Now()
		elapsed := now.Sub(lastTime)
		fpsDelta := now.Sub(fpsLastTime)

		if elapsed.Seconds() >= 1.0 {
			window.SetTitle(fmt.Sprintf("softgl | FPS: %d | (%.1f, %.1f, %.1f)",
				frameCount, camera.Position.X, camera.Position.Y, camera.Position.Z))
			frameCount = 0
			lastTime = now
		}

		if fpsCounter%60 == 0 {
			fpsRate := float64(fpsCounter) / fpsDelta.Seconds()
			fmt.Printf("[Frame %d] FPS: %.1f | Pos: (%.2f, %.2f, %.2f) | %s\n",
				fpsCounter, fpsRate,
				camera.Position.X, camera.Position.Y, camera.Position.Z,
				dayNight.TimeOfDayStr())
			fpsLastTime = now
		}

		deltaTime = float32(elapsed.Seconds())
	}

	fmt.Println("Exiting...")
}
