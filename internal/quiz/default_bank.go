package quiz

// DefaultBank returns the built-in MMAN1130 Part A bank used when nothing was imported
// and no saved session exists.
func DefaultBank() Bank {
	return Bank{
		{
			ID:     1,
			Prompt: "What is the primary purpose of engineering standards?",
			Choices: []Choice{
				{Label: "A", Text: "To limit innovation in design"},
				{Label: "B", Text: "To reduce manufacturing costs only"},
				{Label: "C", Text: "To ensure safety, reliability, and consistency"},
				{Label: "D", Text: "To increase paperwork in engineering projects"},
			},
			CorrectIndex: 2,
			Explanation:  "Standards codify best practice so parts and documentation are compatible across suppliers and time. They target safety, interchangeability and consistent quality (not just cost reduction) and still leave room for innovation within defined limits.",
		},
		{
			ID:     2,
			Prompt: "In Australia, which body is responsible for national standards development?",
			Choices: []Choice{
				{Label: "A", Text: "Engineers Australia"},
				{Label: "B", Text: "ASME"},
				{Label: "C", Text: "Standards Australia"},
				{Label: "D", Text: "ISO"},
			},
			CorrectIndex: 2,
			Explanation:  "Standards Australia oversees the development and adoption of Australian Standards (AS). Engineers Australia is a professional body; ASME is US‑based; ISO publishes international standards that Australia may adopt or adapt.",
		},
		{
			ID:     3,
			Prompt: "According to AS 1100, what type of line is used to represent visible edges?",
			Choices: []Choice{
				{Label: "A", Text: "Chain thin"},
				{Label: "B", Text: "Dashed thick"},
				{Label: "C", Text: "Continuous thick"},
				{Label: "D", Text: "Continuous thin"},
			},
			CorrectIndex: 2,
			Explanation:  "AS 1100 specifies a continuous thick line for outlines/visible edges. Hidden edges use dashed thin; centerlines are chain thin; each conveys a different semantic on the drawing.",
		},
		{
			ID:     4,
			Prompt: "What is the correct scale designation for a drawing that is half the real-world size, according to AS 1100?",
			Choices: []Choice{
				{Label: "A", Text: "2:1"},
				{Label: "B", Text: "1:2"},
				{Label: "C", Text: "1:10"},
				{Label: "D", Text: "1:1"},
			},
			CorrectIndex: 1,
			Explanation:  "In AS 1100, Scale 1:2 means the plotted size is 0.5× the true size. 2:1 would be an enlargement; 1:1 is full size.",
		},
		{
			ID:     5,
			Prompt: "What is the main purpose of using cutting fluid in machining?",
			Choices: []Choice{
				{Label: "A", Text: "To colour the workpiece"},
				{Label: "B", Text: "To dissolve the material being cut"},
				{Label: "C", Text: "To cool, lubricate, and flush away chips"},
				{Label: "D", Text: "To bond the cutting tool to the workpiece"},
			},
			CorrectIndex: 2,
			Explanation:  "Cutting fluids reduce friction at the tool–chip interface (lubrication), carry heat away (cooling), and help evacuate chips. The net effect is lower tool wear, better dimensional accuracy and improved surface finish.",
		},
		{
			ID:     6,
			Prompt: "What can happen if chips are not removed during machining?",
			Choices: []Choice{
				{Label: "A", Text: "Tool wear and poor surface finish"},
				{Label: "B", Text: "Improved surface finish"},
				{Label: "C", Text: "Decrease in material hardness"},
				{Label: "D", Text: "Nothing; chips fall away automatically"},
			},
			CorrectIndex: 0,
			Explanation:  "Re‑cutting loose chips increases rubbing and heat, which accelerates flank/ crater wear and leaves torn or smeared surfaces. Effective chip control is a core element of process planning.",
		},
		{
			ID:     7,
			Prompt: "What is the purpose of reaming?",
			Choices: []Choice{
				{Label: "A", Text: "To create a thread inside a hole"},
				{Label: "B", Text: "To enlarge an existing hole to a precise size and finish"},
				{Label: "C", Text: "To remove chips from a drilled hole"},
				{Label: "D", Text: "To create a tapered hole"},
			},
			CorrectIndex: 1,
			Explanation:  "A reamer removes a small allowance (typically a few tenths of a millimetre) from a pre‑drilled hole to achieve tight size tolerance and improved surface finish. Threads are cut by tapping; tapers require a tapered tool.",
		},
		{
			ID:     8,
			Prompt: "What is the primary function of a milling machine?",
			Choices: []Choice{
				{Label: "A", Text: "To heat metal for forging"},
				{Label: "B", Text: "To join two metal parts"},
				{Label: "C", Text: "To remove material using a rotating cutter"},
				{Label: "D", Text: "To measure component dimensions"},
			},
			CorrectIndex: 2,
			Explanation:  "Milling uses a rotating multi‑point cutter to shear material, creating flats, slots, pockets and complex 3D surfaces depending on the toolpath and cutter geometry.",
		},
		{
			ID:     9,
			Prompt: "Which tool is used to cut internal threads into a pre‑drilled hole?",
			Choices: []Choice{
				{Label: "A", Text: "Reamer"},
				{Label: "B", Text: "Twist drill"},
				{Label: "C", Text: "Tap"},
				{Label: "D", Text: "Die"},
			},
			CorrectIndex: 2,
			Explanation:  "A tap forms internal threads by cutting the thread profile into the wall of a drilled hole. A die produces external threads on a rod or shaft; a reamer is for sizing/finishing a hole.",
		},
		{
			ID:     10,
			Prompt: "In milling, what is the difference between peripheral and face milling?",
			Choices: []Choice{
				{Label: "A", Text: "Peripheral uses the face of the cutter; face milling uses the edge"},
				{Label: "B", Text: "Peripheral removes more material; face milling is for finishing only"},
				{Label: "C", Text: "Peripheral uses the cutter’s sides; face milling uses the cutter’s end"},
				{Label: "D", Text: "There is no difference"},
			},
			CorrectIndex: 2,
			Explanation:  "Peripheral (slab) milling engages the cutter periphery to generate surfaces parallel to the cutter axis; face milling uses the tool end/inserted face to generate a surface perpendicular to the axis.",
		},
		{
			ID:     11,
			Prompt: "What is the main advantage of CNC milling over manual milling?",
			Choices: []Choice{
				{Label: "A", Text: "Requires more operators"},
				{Label: "B", Text: "Lower initial cost"},
				{Label: "C", Text: "Greater precision and repeatability"},
				{Label: "D", Text: "Easier to transport"},
			},
			CorrectIndex: 2,
			Explanation:  "CNC machines execute programmed toolpaths with closed‑loop control, giving consistent accuracy and the ability to machine complex geometries repeatedly with minimal variation compared with manual setups.",
		},
		{
			ID:     12,
			Prompt: "Which turning operation reduces the diameter of a workpiece along its length?",
			Choices: []Choice{
				{Label: "A", Text: "Facing"},
				{Label: "B", Text: "Boring"},
				{Label: "C", Text: "Taper turning"},
				{Label: "D", Text: "Straight turning"},
			},
			CorrectIndex: 3,
			Explanation:  "Straight turning feeds a single‑point tool parallel to the spindle axis to bring an outer diameter down to size. Facing acts axially to shorten length; boring enlarges internal diameters; taper turning varies diameter linearly.",
		},
		{
			ID:     13,
			Prompt: "Which part of the lathe supports the other end of the workpiece when it is long or slender?",
			Choices: []Choice{
				{Label: "A", Text: "Headstock"},
				{Label: "B", Text: "Tailstock"},
				{Label: "C", Text: "Tool holder"},
				{Label: "D", Text: "Bed"},
			},
			CorrectIndex: 1,
			Explanation:  "The tailstock holds a centre (dead/live) or a drill chuck to support the free end of the work, reducing deflection and chatter. For mid‑span support a steady/follower rest may also be used.",
		},
		{
			ID:     14,
			Prompt: "In a clearance fit:",
			Choices: []Choice{
				{Label: "A", Text: "The shaft is always larger than the hole"},
				{Label: "B", Text: "The hole is always larger than the shaft"},
				{Label: "C", Text: "There is no tolerance applied"},
				{Label: "D", Text: "Parts are welded together"},
			},
			CorrectIndex: 1,
			Explanation:  "A clearance fit guarantees positive clearance (hole − shaft > 0) over the tolerance ranges, enabling easy assembly and free movement. The opposite is an interference fit, where parts press‑fit together.",
		},
		{
			ID:     15,
			Prompt: "What is the meaning of the designation H7/g6?",
			Choices: []Choice{
				{Label: "A", Text: "Surface roughness"},
				{Label: "B", Text: "Thread class"},
				{Label: "C", Text: "Tolerances"},
				{Label: "D", Text: "Welding grade"},
			},
			CorrectIndex: 2,
			Explanation:  "H7/g6 is a hole‑basis fit: H7 defines the hole tolerance zone starting at the basic size; g6 defines a shaft zone below basic size. Together they describe a typical sliding/locational clearance fit for precise assemblies.",
		},
		{
			ID:     16,
			Prompt: "What is the primary goal of high‑volume manufacturing (HVM)?",
			Choices: []Choice{
				{Label: "A", Text: "To produce highly customised, unique parts"},
				{Label: "B", Text: "To produce small quantities of handmade parts"},
				{Label: "C", Text: "To test new materials before full production"},
				{Label: "D", Text: "To efficiently produce large quantities of identical parts"},
			},
			CorrectIndex: 3,
			Explanation:  "HVM seeks low unit cost with high throughput by standardising parts and processes, reducing cycle time, and leveraging automation/line balancing for repeatable quality.",
		},
		{
			ID:     17,
			Prompt: "Die casting typically involves which type of material?",
			Choices: []Choice{
				{Label: "A", Text: "Thermoplastics"},
				{Label: "B", Text: "Thermosets"},
				{Label: "C", Text: "Molten metal"},
				{Label: "D", Text: "Composite materials"},
			},
			CorrectIndex: 2,
			Explanation:  "High‑pressure die casting injects molten metal (commonly aluminium, zinc or magnesium alloys) into a hardened steel die, giving thin walls and good surface finish at high production rates.",
		},
		{
			ID:     18,
			Prompt: "Which process is most suitable for producing large metal parts in small quantities (e.g. engine blocks, pump housings)?",
			Choices: []Choice{
				{Label: "A", Text: "Sand casting"},
				{Label: "B", Text: "Injection moulding"},
				{Label: "C", Text: "Die casting"},
				{Label: "D", Text: "3D printing"},
			},
			CorrectIndex: 0,
			Explanation:  "Sand casting has low tooling cost and accommodates large, heavy geometries with modest volumes. Die casting is capital‑intensive and suited to smaller parts; injection moulding is for polymers; 3D printing struggles with very large dense metal parts economically.",
		},
		{
			ID:     19,
			Prompt: "In high‑volume manufacturing, what happens to the cost per unit as production volume increases?",
			Choices: []Choice{
				{Label: "A", Text: "It increases"},
				{Label: "B", Text: "It stays the same"},
				{Label: "C", Text: "It decreases"},
				{Label: "D", Text: "It becomes unpredictable"},
			},
			CorrectIndex: 2,
			Explanation:  "Average cost falls with volume because fixed costs (tooling, overhead, setup) are spread over more units and processes improve via learning curves and utilisation.",
		},
		{
			ID:     20,
			Prompt: "Which of the following is considered a fixed cost in manufacturing?",
			Choices: []Choice{
				{Label: "A", Text: "Cost of raw materials"},
				{Label: "B", Text: "Labour per unit"},
				{Label: "C", Text: "Electricity used by each machine"},
				{Label: "D", Text: "Cost of tooling and equipment"},
			},
			CorrectIndex: 3,
			Explanation:  "Tooling and capital equipment are fixed (up‑front) outlays that do not change with the number of units produced in the short run; materials, unit labour and energy scale with output.",
		},
	}
}
