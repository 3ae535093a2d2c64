package render

// Both passes draw the same fullscreen quad; only the fragment stage
// differs.
const quadVertexShader = `#version 410 core
layout(location = 0) in vec2 pos;
void main() {
    gl_Position = vec4(pos, 0.0, 1.0);
}
` + "\x00"

// computeFragmentShader advances the state texture by one generation.
// Texture row 0 holds the current generation and row k the generation k
// steps back. Every history row takes the value of the row one step newer,
// and row 0 is recomputed from its three horizontally wrapped neighbors by
// testing bit (4*left + 2*center + right) of the rule number. Reads come
// exclusively from the bound read texture; the write texture is attached
// to the target framebuffer.
const computeFragmentShader = `#version 410 core
uniform sampler2D stateTex;
uniform int cols;
uniform int rule;
out vec4 fragColor;

int cellAt(int x, int y) {
    return texelFetch(stateTex, ivec2(x, y), 0).r > 0.5 ? 1 : 0;
}

void main() {
    ivec2 p = ivec2(gl_FragCoord.xy);
    if (p.y > 0) {
        // scroll: this row ages by one generation
        fragColor = texelFetch(stateTex, ivec2(p.x, p.y - 1), 0);
        return;
    }
    int left = cellAt((p.x + cols - 1) % cols, 0);
    int center = cellAt(p.x, 0);
    int right = cellAt((p.x + 1) % cols, 0);
    int pattern = 4 * left + 2 * center + right;
    float alive = float((rule >> pattern) & 1);
    fragColor = vec4(alive, 0.0, 0.0, 1.0);
}
` + "\x00"

// displayFragmentShader maps output pixels through the cell geometry to
// (cellIndex, generationOffset) addresses in the state texture. Pixels in
// inter-cell margins or outside the occupied region get the background
// color; live cells fade linearly with generation age.
const displayFragmentShader = `#version 410 core
uniform sampler2D stateTex;
uniform int cellSize;
uniform int cellMargin;
uniform int renderMargin;
uniform int cols;
uniform int occupied;
uniform int viewHeight;
uniform vec4 liveColor;
uniform vec4 backColor;
out vec4 fragColor;

void main() {
    int pitch = cellSize + cellMargin;
    int px = int(gl_FragCoord.x) - renderMargin;
    // gl_FragCoord has its origin at the bottom left; screen rows count
    // from the top
    int py = (viewHeight - 1 - int(gl_FragCoord.y)) - renderMargin;
    if (px < 0 || py < 0) {
        fragColor = backColor;
        return;
    }
    int cell = px / pitch;
    int row = py / pitch;
    if (cell >= cols || row >= occupied) {
        fragColor = backColor;
        return;
    }
    if (px - cell * pitch >= cellSize - 1 || py - row * pitch >= cellSize - 1) {
        fragColor = backColor;
        return;
    }
    int age = occupied - 1 - row;
    if (texelFetch(stateTex, ivec2(cell, age), 0).r < 0.5) {
        fragColor = backColor;
        return;
    }
    float fade = 1.0 - float(age) / float(occupied);
    fragColor = vec4(liveColor.rgb, liveColor.a * fade);
}
` + "\x00"
