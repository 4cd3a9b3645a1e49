package point_test

import (
	"fmt"
	"image"
	"math"

	"github.com/go-topology/topocheck/point"
)

func ExampleNew() {
	p := point.New(10.5, 20.25)
	fmt.Printf("Point: %s, type %T\n", p, p)

	// Output:
	// Point: (10.500000,20.250000), type point.Point
}

func ExampleNewFromImagePoint() {
	imgPoint := image.Point{X: 10, Y: 20}

	p := point.NewFromImagePoint(imgPoint)

	fmt.Printf("Image Point: %s, type %T\n", imgPoint, imgPoint)
	fmt.Printf("Point: %s, type %T\n", p, p)

	// Output:
	// Image Point: (10,20), type image.Point
	// Point: (10.000000,20.000000), type point.Point
}

func ExamplePoint_AngleBetween() {
	origin := point.New(0, 0)
	pointA := point.New(10, 0)
	pointB := point.New(10, 10)

	radians := origin.AngleBetween(pointA, pointB)
	degrees := radians * 180 / math.Pi

	fmt.Printf(
		"The angle between point %s and point %s relative to point %s is %0.0f degrees",
		pointA,
		pointB,
		origin,
		degrees,
	)

	// Output:
	// The angle between point (10.000000,0.000000) and point (10.000000,10.000000) relative to point (0.000000,0.000000) is 45 degrees
}

func ExamplePoint_Coordinates() {
	p := point.New(5, -3)

	x, y := p.Coordinates()
	fmt.Printf("Point coordinates: (%.0f, %.0f)\n", x, y)

	// Output:
	// Point coordinates: (5, -3)
}

func ExamplePoint_CosineOfAngleBetween() {
	origin := point.New(0, 0)
	pointA := point.New(10, 0)
	pointB := point.New(10, 10)

	cosineOfAngle := origin.CosineOfAngleBetween(pointA, pointB)

	fmt.Printf(
		"The cosine of the angle between point %s and point %s relative to point %s is %0.6f",
		pointA,
		pointB,
		origin,
		cosineOfAngle,
	)

	// Output:
	// The cosine of the angle between point (10.000000,0.000000) and point (10.000000,10.000000) relative to point (0.000000,0.000000) is 0.707107
}

func ExamplePoint_DistanceSquaredToPoint() {
	p := point.New(3, 4)
	q := point.New(6, 8)

	distanceSquared := p.DistanceSquaredToPoint(q)

	fmt.Printf("The squared distance between %v and %v is %.0f\n", p, q, distanceSquared)

	// Output:
	// The squared distance between (3.000000,4.000000) and (6.000000,8.000000) is 25
}

func ExamplePoint_DistanceToPoint() {
	p1 := point.New(3, 4)
	p2 := point.New(0, 0)

	distance := p1.DistanceToPoint(p2)

	fmt.Printf("The Euclidean distance between %v and %v is %.2f\n", p1, p2, distance)

	// Output:
	// The Euclidean distance between (3.000000,4.000000) and (0.000000,0.000000) is 5.00
}

func ExamplePoint_DotProduct() {
	p1 := point.New(3, 4)
	p2 := point.New(1, 2)

	dotProduct := p1.DotProduct(p2)

	fmt.Printf("The dot product of vector %v and vector %v is %.2f\n", p1, p2, dotProduct)

	// Output:
	// The dot product of vector (3.000000,4.000000) and vector (1.000000,2.000000) is 11.00
}

func ExamplePoint_Eq() {
	p := point.New(3, 4)
	q := point.New(3, 4)

	isEqual := p.Eq(q)
	fmt.Printf("Are %s and %s equal: %t\n", p, q, isEqual)

	// Output:
	// Are (3.000000,4.000000) and (3.000000,4.000000) equal: true
}

func ExamplePoint_Negate() {
	p := point.New(3, -4)

	negated := p.Negate()

	fmt.Println("Original Point:", p)
	fmt.Println("Negated Point:", negated)

	// Output:
	// Original Point: (3.000000,-4.000000)
	// Negated Point: (-3.000000,4.000000)
}

func ExamplePoint_Rotate() {
	pivot := point.New(0, 0)
	p := point.New(10, 0)
	radians := math.Pi / 2 // 90 degrees

	rotated := p.Rotate(pivot, radians)

	fmt.Printf(
		"Point %s rotated 90 degrees counter-clockwise around %s is: %s\n",
		p,
		pivot,
		rotated,
	)

	// Output:
	// Point (10.000000,0.000000) rotated 90 degrees counter-clockwise around (0.000000,0.000000) is: (0.000000,10.000000)
}

func ExamplePoint_Scale() {
	p := point.New(3, 4)
	ref := point.New(1, 1)
	factor := 2.0

	scaled := p.Scale(ref, factor)

	fmt.Printf(
		"Point %s scaled by a factor of %v relative to reference point %s is %s\n",
		p,
		factor,
		ref,
		scaled,
	)

	// Output:
	// Point (3.000000,4.000000) scaled by a factor of 2 relative to reference point (1.000000,1.000000) is (5.000000,7.000000)
}

func ExamplePoint_String() {
	p := point.New(1, 2)

	// When fmt.Println is used to print a variable, and that variable
	// implements the Stringer interface, Go automatically calls String()
	// rather than using the default representation of the type.
	fmt.Println(p)
	fmt.Println(p.String())

	// Output:
	// (1.000000,2.000000)
	// (1.000000,2.000000)
}

func ExamplePoint_Translate() {
	p := point.New(1, 2)
	delta := point.New(-2, -4)

	translated := p.Translate(delta)

	fmt.Printf("Point %s translated by %s is %s\n", p, delta, translated)

	// Output:
	// Point (1.000000,2.000000) translated by (-2.000000,-4.000000) is (-1.000000,-2.000000)
}

func ExamplePoint_X() {
	p := point.New(1, 2)

	fmt.Printf("The X coordinate of point %s is %.0f", p, p.X())

	// Output:
	// The X coordinate of point (1.000000,2.000000) is 1
}

func ExamplePoint_Y() {
	p := point.New(1, 2)

	fmt.Printf("The Y coordinate of point %s is %.0f", p, p.Y())

	// Output:
	// The Y coordinate of point (1.000000,2.000000) is 2
}
