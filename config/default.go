package config

// DefaultYAML is the built-in scene configuration, user files are layered on top
const DefaultYAML = `
scene:
  fps: 60
  objects_distance: 4
  max_scroll: 10
  scroll_step: 0.25
  scroll_duration: 4
  scroll_ease: power2.out
  parallax_factor: 0.5
  parallax_smoothing: 5
  noise_seed: 24301
  load_workers: 2

camera:
  fov: 75
  near: 0.1
  far: 100
  position: [2, -2, 2.5]
  target: [0, 0.75, 0]
  cell_aspect: 0.5
  fog_near: 2
  fog_far: 9
  fog_color: "#1c1c1c"

grid:
  rows: 8
  columns: 16

reveal:
  color: "#e8e8e8"
  auto_interval: 10
  in:
    duration: 1
    each: 0.02
    ease: power4
  out:
    offset: 0.3
    duration: 1
    each: 0.03
    ease: power1

scramble:
  step: 0.03

particles:
  count: 1000
  spread: 4
  seed: 7
  color: "#8a8a8a"

actors:
  - name: sunglasses
    shape: glasses
    detail: 32
    scale: 1.225
    position: [0.2, 1, 0.35]
    rotation: [0, 0.8267, 0]
    color: "#f2f2f2"
    latency: 0.4
    reactive: true
    motion:
      frequency: 4
      x: {cos: 0.04, noise: 0.15}
      y: {cos: 0.2, noise: 0.05, base: 0.6283}
  - name: gloves
    shape: box
    detail: 24
    scale: 4.25
    position: [0, -16, 1.35]
    rotation: [6.2832, 1.5708, 0]
    color: "#c9a0dc"
    latency: 0.8
    intersectable: true
  - name: mask
    shape: sphere
    detail: 28
    scale: 2.125
    position: [2, -24, 2.15]
    rotation: [1.309, 0, 0]
    color: "#ff6f91"
    latency: 1.2
    intersectable: true
  - name: glass
    shape: torus
    detail: 32
    scale: 2.225
    position: [5, -40, 3.15]
    rotation: [2.618, 0, 0]
    color: "#7fdbff"
    latency: 1.6
    intersectable: true
    motion:
      frequency: 2
      x: {cos: 0.04, noise: 0.05}

labels:
  - {text: "GOO SCENE", col: 2, row: 1}
  - {text: "SCROLL", col: 2, row: 3}
  - {text: "CLICK ANYWHERE", col: 2, row: 4}
`
